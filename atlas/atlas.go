package atlas

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/sdf"
)

// Config holds glyph page configuration.
type Config struct {
	// PageSize is the page texture size in pixels (width = height).
	// Must be power of 2. Default: 1024
	PageSize int

	// Padding is the spacing between packed regions. It keeps filtered
	// texture samples near a region edge from reading the neighbor.
	// Default: 2
	Padding int

	// MaxPages limits the number of pages the manager may create.
	// Default: 8
	MaxPages int
}

// DefaultConfig returns the default page configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: 1024,
		Padding:  2,
		MaxPages: 8,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PageSize < 64 {
		return &ConfigError{Field: "PageSize", Reason: "must be at least 64"}
	}
	if c.PageSize > 8192 {
		return &ConfigError{Field: "PageSize", Reason: "must be at most 8192"}
	}
	// Check power of 2
	if c.PageSize&(c.PageSize-1) != 0 {
		return &ConfigError{Field: "PageSize", Reason: "must be power of 2"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Padding >= c.PageSize/2 {
		return &ConfigError{Field: "Padding", Reason: "must be less than half PageSize"}
	}
	if c.MaxPages < 1 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at least 1"}
	}
	if c.MaxPages > 256 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at most 256"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// Page is a single RGBA texture page holding packed glyph fields.
// Texels outside every region stay transparent black, which decodes as
// far outside any glyph.
type Page struct {
	buf       *sdf.PixelBuffer
	regions   map[GlyphKey]Region
	allocator *ShelfAllocator
	dirty     bool
	index     int
}

// newPage creates an empty page. size comes from a validated Config, so
// buffer construction cannot fail.
func newPage(index, size, padding int) *Page {
	buf, _ := sdf.NewPixelBuffer(size, size)
	return &Page{
		buf:       buf,
		regions:   make(map[GlyphKey]Region),
		allocator: NewShelfAllocator(size, size, padding),
		index:     index,
	}
}

// blit copies a generated field into the page at (x, y) and marks the
// page dirty for upload. The caller guarantees the destination rectangle
// was reserved by the allocator.
func (p *Page) blit(src *sdf.PixelBuffer, x, y int) {
	if src == nil || src.Empty() {
		return
	}
	dst := p.buf.Data()
	data := src.Data()
	rowBytes := src.Width() * 4
	for dy := 0; dy < src.Height(); dy++ {
		di := p.buf.PixelOffset(x, y+dy)
		si := dy * rowBytes
		copy(dst[di:di+rowBytes], data[si:si+rowBytes])
	}
	p.dirty = true
}

// Buffer returns the page's pixel storage for inspection or upload.
func (p *Page) Buffer() *sdf.PixelBuffer {
	return p.buf
}

// Size returns the page edge length in pixels.
func (p *Page) Size() int {
	return p.buf.Width()
}

// Index returns the page's position in the manager.
func (p *Page) Index() int {
	return p.index
}

// GlyphCount returns the number of glyph fields in this page.
func (p *Page) GlyphCount() int {
	return len(p.regions)
}

// Utilization returns the fraction of page space used.
func (p *Page) Utilization() float64 {
	return p.allocator.Utilization()
}

// IsDirty returns true if the page has been modified since last upload.
func (p *Page) IsDirty() bool {
	return p.dirty
}

// Region describes a glyph field's location within a page.
type Region struct {
	// PageIndex indicates which page holds the glyph field.
	PageIndex int

	// UV coordinates [0, 1] for texture sampling.
	U0, V0, U1, V1 float32

	// Pixel coordinates in the page.
	X, Y, Width, Height int
}

// GlyphKey uniquely identifies a glyph field in the cache.
type GlyphKey struct {
	// FontID identifies the font (hash of font data or path).
	FontID uint64

	// GlyphID is the glyph index within the font.
	GlyphID uint16

	// PPEM is the strike size the coverage was taken at. The same glyph
	// at a different strike size is a different field.
	PPEM uint16
}

// Manager caches generated glyph fields across a set of texture pages.
// It is safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	config    Config
	pages     []*Page
	lookup    map[GlyphKey]Region
	generator *sdf.Generator

	// Statistics (atomic for lock-free reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewManager creates a page manager with the given configuration.
// Cache misses are generated with sdf.DefaultGenerator; use SetGenerator
// to install a tuned one.
func NewManager(config Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Manager{
		config:    config,
		pages:     make([]*Page, 0, config.MaxPages),
		lookup:    make(map[GlyphKey]Region),
		generator: sdf.DefaultGenerator(),
	}, nil
}

// NewManagerDefault creates a page manager with default configuration.
func NewManagerDefault() *Manager {
	m, _ := NewManager(DefaultConfig())
	return m
}

// Get retrieves a glyph region, generating and packing its distance
// field from the coverage bitmap if needed.
func (m *Manager) Get(key GlyphKey, coverage *image.Alpha) (Region, error) {
	// Fast path: check if already cached (read lock)
	m.mu.RLock()
	if region, ok := m.lookup[key]; ok {
		m.mu.RUnlock()
		m.hits.Add(1)
		return region, nil
	}
	m.mu.RUnlock()

	m.misses.Add(1)

	// Slow path: need to generate and pack (write lock)
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.getLocked(key, coverage)
}

// GetBatch retrieves multiple glyph regions at once. This is more
// efficient than calling Get per glyph when priming the cache for a run
// of text, as it takes the locks once per pass.
func (m *Manager) GetBatch(keys []GlyphKey, coverages []*image.Alpha) ([]Region, error) {
	if len(keys) != len(coverages) {
		return nil, ErrLengthMismatch
	}

	results := make([]Region, len(keys))
	missing := make([]int, 0, len(keys))

	// First pass: resolve cached entries (read lock)
	m.mu.RLock()
	for i, key := range keys {
		if region, ok := m.lookup[key]; ok {
			results[i] = region
			m.hits.Add(1)
		} else {
			missing = append(missing, i)
		}
	}
	m.mu.RUnlock()

	if len(missing) == 0 {
		return results, nil
	}

	// Second pass: generate missing entries (write lock)
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, idx := range missing {
		// Double-check after acquiring write lock
		if region, ok := m.lookup[keys[idx]]; ok {
			results[idx] = region
			continue
		}
		m.misses.Add(1)

		region, err := m.getLocked(keys[idx], coverages[idx])
		if err != nil {
			return nil, err
		}
		results[idx] = region
	}

	return results, nil
}

// getLocked resolves one key. Must be called with the write lock held.
func (m *Manager) getLocked(key GlyphKey, coverage *image.Alpha) (Region, error) {
	// Double-check after acquiring write lock
	if region, ok := m.lookup[key]; ok {
		return region, nil
	}

	field, err := m.generator.GenerateFromAlpha(coverage)
	if err != nil {
		return Region{}, fmt.Errorf("atlas: generating field for glyph %d: %w", key.GlyphID, err)
	}

	page, x, y, err := m.placeLocked(field.Width(), field.Height())
	if err != nil {
		return Region{}, err
	}
	page.blit(field, x, y)

	pageSize := float32(m.config.PageSize)
	region := Region{
		PageIndex: page.index,
		X:         x,
		Y:         y,
		Width:     field.Width(),
		Height:    field.Height(),
		U0:        float32(x) / pageSize,
		V0:        float32(y) / pageSize,
		U1:        float32(x+field.Width()) / pageSize,
		V1:        float32(y+field.Height()) / pageSize,
	}

	m.lookup[key] = region
	page.regions[key] = region

	sdf.Logger().Debug("atlas: insert",
		"glyph", key.GlyphID,
		"page", page.index,
		"x", x,
		"y", y,
		"width", field.Width(),
		"height", field.Height(),
	)

	return region, nil
}

// placeLocked reserves a w x h rectangle on a page, creating a new page
// when no existing one has room. Must be called with the write lock held.
func (m *Manager) placeLocked(w, h int) (*Page, int, int, error) {
	for _, page := range m.pages {
		if x, y, ok := page.allocator.Allocate(w, h); ok {
			return page, x, y, nil
		}
	}

	if len(m.pages) >= m.config.MaxPages {
		return nil, 0, 0, &AtlasFullError{MaxPages: m.config.MaxPages}
	}

	page := newPage(len(m.pages), m.config.PageSize, m.config.Padding)
	x, y, ok := page.allocator.Allocate(w, h)
	if !ok {
		// Does not fit even an empty page.
		return nil, 0, 0, ErrGlyphTooLarge
	}
	m.pages = append(m.pages, page)

	return page, x, y, nil
}

// Clear removes all cached glyphs and pages and resets the statistics.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pages = m.pages[:0]
	m.lookup = make(map[GlyphKey]Region)
	m.hits.Store(0)
	m.misses.Store(0)
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses uint64, pageCount int) {
	m.mu.RLock()
	pageCount = len(m.pages)
	m.mu.RUnlock()

	hits = m.hits.Load()
	misses = m.misses.Load()
	return
}

// GlyphCount returns the total number of cached glyph fields.
func (m *Manager) GlyphCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lookup)
}

// PageCount returns the number of pages currently in use.
func (m *Manager) PageCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}

// GetPage returns a page for inspection or upload.
// Returns nil if index is out of range.
func (m *Manager) GetPage(index int) *Page {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 0 || index >= len(m.pages) {
		return nil
	}
	return m.pages[index]
}

// DirtyPages returns indices of pages needing upload.
func (m *Manager) DirtyPages() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var dirty []int
	for i, page := range m.pages {
		if page.dirty {
			dirty = append(dirty, i)
		}
	}
	return dirty
}

// MarkClean marks a page as uploaded.
func (m *Manager) MarkClean(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index >= 0 && index < len(m.pages) {
		m.pages[index].dirty = false
	}
}

// MarkAllClean marks all pages as uploaded.
func (m *Manager) MarkAllClean() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, page := range m.pages {
		page.dirty = false
	}
}

// Config returns the page configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Generator returns the field generator used by this manager.
func (m *Manager) Generator() *sdf.Generator {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generator
}

// SetGenerator installs a custom field generator. It only affects
// glyphs generated after the call.
func (m *Manager) SetGenerator(g *sdf.Generator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generator = g
}

// HasGlyph returns true if the glyph field is already cached.
func (m *Manager) HasGlyph(key GlyphKey) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.lookup[key]
	return ok
}

// Remove removes a specific glyph from the cache.
// Note: This does not reclaim space in the page.
func (m *Manager) Remove(key GlyphKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	region, ok := m.lookup[key]
	if !ok {
		return false
	}

	delete(m.lookup, key)
	if region.PageIndex >= 0 && region.PageIndex < len(m.pages) {
		delete(m.pages[region.PageIndex].regions, key)
	}

	return true
}

// Compact removes all pages that have no glyphs left, reclaiming their
// memory. Returns the number of pages removed.
func (m *Manager) Compact() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	kept := make([]*Page, 0, len(m.pages))

	for _, page := range m.pages {
		if len(page.regions) == 0 {
			removed++
			continue
		}
		page.index = len(kept)
		// Reindex the regions that pointed at the old position.
		for key, region := range page.regions {
			region.PageIndex = page.index
			page.regions[key] = region
			m.lookup[key] = region
		}
		kept = append(kept, page)
	}

	m.pages = kept
	return removed
}

// MemoryUsage returns the total memory held by page buffers in bytes.
func (m *Manager) MemoryUsage() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, page := range m.pages {
		total += int64(len(page.buf.Data()))
	}
	return total
}

// PageInfo contains information about a single page.
type PageInfo struct {
	Index       int
	GlyphCount  int
	Utilization float64
	Dirty       bool
	MemoryBytes int
}

// PageInfos returns information about all pages.
func (m *Manager) PageInfos() []PageInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]PageInfo, len(m.pages))
	for i, page := range m.pages {
		infos[i] = PageInfo{
			Index:       i,
			GlyphCount:  len(page.regions),
			Utilization: page.Utilization(),
			Dirty:       page.dirty,
			MemoryBytes: len(page.buf.Data()),
		}
	}
	return infos
}

// AtlasFullError is returned when all pages are full.
type AtlasFullError struct {
	MaxPages int
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("atlas: all %d pages are full", e.MaxPages)
}
