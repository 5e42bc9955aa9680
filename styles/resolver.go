package styles

import (
	"sync"

	"github.com/tsawler/typeset/model"
)

// TemplateVersion tags the template construction revision. It is part of
// every cache key, so bumping it invalidates previously built templates.
const TemplateVersion = "template-v3"

// Cache is the injectable template cache abstraction. Implementations must
// provide idempotent get-or-build semantics: concurrent Put calls for the
// same key may race, but since template construction is a pure function of
// the style id, duplicate builds are acceptable and never corrupt state.
type Cache interface {
	Get(key string) (*model.StyleTemplate, bool)
	Put(key string, t *model.StyleTemplate)
}

// MemoryCache is a mutex-guarded in-memory Cache.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]*model.StyleTemplate
}

// NewMemoryCache creates an empty in-memory template cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: make(map[string]*model.StyleTemplate)}
}

func (c *MemoryCache) Get(key string) (*model.StyleTemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.m[key]
	return t, ok
}

func (c *MemoryCache) Put(key string, t *model.StyleTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = t
}

// Delete removes a cached template. Callers that register learned styles
// are responsible for deleting them when the owning session ends.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

// Len returns the number of cached templates.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Resolver builds style templates and caches them process-wide.
type Resolver struct {
	cache Cache
}

// NewResolver creates a resolver backed by the given cache. A nil cache
// gets a fresh in-memory one.
func NewResolver(cache Cache) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Resolver{cache: cache}
}

// CacheKey returns the cache key used for a style id under the current
// template version.
func CacheKey(styleID string) string {
	return styleID + "@" + TemplateVersion
}

// Resolve returns the template for a predefined style id. Unknown ids fall
// back to the default profile rather than failing; the returned template
// still carries the requested id so callers can detect the substitution by
// comparing against Fallback().
func (r *Resolver) Resolve(styleID string) *model.StyleTemplate {
	key := CacheKey(styleID)
	if t, ok := r.cache.Get(key); ok {
		return t
	}

	t, ok := buildPredefined(styleID)
	if !ok {
		t, _ = buildPredefined(DefaultStyleID)
		if t == nil {
			t = Fallback(styleID)
		}
		t.StyleID = styleID
	}
	r.cache.Put(key, t)
	return t
}

// ResolveLearned returns the template learned from a reference document's
// extracted style attributes, building and caching it on first use.
func (r *Resolver) ResolveLearned(styleID string, ext *model.StyleExtraction) *model.StyleTemplate {
	key := CacheKey(styleID)
	if t, ok := r.cache.Get(key); ok {
		return t
	}
	t := Learn(styleID, ext)
	r.cache.Put(key, t)
	return t
}

// Fallback returns the hard-coded last-resort template used when even the
// built-in profile data is unavailable.
func Fallback(styleID string) *model.StyleTemplate {
	return &model.StyleTemplate{
		StyleID: styleID,
		Rules: map[model.ElementType]model.FormattingRule{
			model.ElementTitle:   {Prefix: "# ", Bold: true, Center: true, SpacingAfter: 2},
			model.ElementChapter: {Prefix: "## ", Bold: true, SpacingBefore: 2, SpacingAfter: 1},
			model.ElementSection: {Prefix: "### ", Bold: true, SpacingBefore: 1, SpacingAfter: 1},
		},
		General: model.GeneralRules{
			ParagraphSpacing: 1,
			LineHeight:       1.15,
			Alignment:        model.AlignLeft,
			Font:             "Calibri",
			FontSize:         11,
			Color:            "#000000",
			BulletSymbol:     DefaultBullet,
			NumberFormat:     "1.",
		},
	}
}
