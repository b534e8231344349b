package catalog

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Catalog is the root of a metadata tree. It owns its collections
// exclusively; child maps are guarded so bulk structural operations are
// safe alongside readers, but callers must not mutate the tree structure
// while a fetch over the same node is in flight.
type Catalog struct {
	ID          string
	Title       string
	Description string

	mu          sync.RWMutex
	collections map[string]*Collection
}

// New creates an empty catalog root.
func New(id, title, description string) *Catalog {
	return &Catalog{
		ID:          id,
		Title:       title,
		Description: description,
		collections: make(map[string]*Collection),
	}
}

// AddCollection attaches col to the catalog.
func (c *Catalog) AddCollection(col *Collection) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.collections[col.ID]; ok {
		return fmt.Errorf("collection %q: %w", col.ID, ErrDuplicateIdentifier)
	}
	c.collections[col.ID] = col
	return nil
}

// Collection returns the child collection with the given identifier.
func (c *Catalog) Collection(id string) (*Collection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	col, ok := c.collections[id]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", id, ErrNotFound)
	}
	return col, nil
}

// Collections returns the child collections ordered by identifier.
func (c *Catalog) Collections() []*Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Collection, 0, len(c.collections))
	for _, col := range c.collections {
		out = append(out, col)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Collection groups items sharing a region or theme. Extension fields are
// namespaced key/value pairs (e.g. "sci:citation") validated when the
// collection is serialized.
type Collection struct {
	ID          string
	Title       string
	Description string
	Provider    string
	Extensions  map[string]any

	mu    sync.RWMutex
	items map[string]*Item
}

// NewCollection creates an empty collection.
func NewCollection(id, title, description, provider string) *Collection {
	return &Collection{
		ID:          id,
		Title:       title,
		Description: description,
		Provider:    provider,
		items:       make(map[string]*Item),
	}
}

// AddItem attaches item to the collection.
func (c *Collection) AddItem(item *Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[item.ID]; ok {
		return fmt.Errorf("item %q: %w", item.ID, ErrDuplicateIdentifier)
	}
	c.items[item.ID] = item
	return nil
}

// Item returns the child item with the given identifier.
func (c *Collection) Item(id string) (*Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return item, nil
}

// Items returns the child items ordered by identifier.
func (c *Collection) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Item is one (region, time-bucket) unit of data. Its asset-key set is
// fixed at creation; only each asset's current location mutates afterwards.
type Item struct {
	ID         string
	BBox       [4]float64 // min lon, min lat, max lon, max lat
	Datetime   time.Time
	Extensions map[string]any

	assets map[string]*Asset
}

// NewItem creates an item owning the given assets. Asset keys must be
// unique within the item.
func NewItem(id string, bbox [4]float64, ts time.Time, assets []*Asset) (*Item, error) {
	item := &Item{
		ID:       id,
		BBox:     bbox,
		Datetime: ts,
		assets:   make(map[string]*Asset, len(assets)),
	}
	for _, a := range assets {
		if _, ok := item.assets[a.Key]; ok {
			return nil, fmt.Errorf("asset %q on item %q: %w", a.Key, id, ErrDuplicateIdentifier)
		}
		item.assets[a.Key] = a
	}
	return item, nil
}

// Asset returns the asset stored under key.
func (i *Item) Asset(key string) (*Asset, error) {
	a, ok := i.assets[key]
	if !ok {
		return nil, fmt.Errorf("asset %q on item %q: %w", key, i.ID, ErrUnknownAssetKey)
	}
	return a, nil
}

// HasAsset reports whether the item carries an asset under key.
func (i *Item) HasAsset(key string) bool {
	_, ok := i.assets[key]
	return ok
}

// AssetKeys returns the item's asset keys ordered alphabetically.
func (i *Item) AssetKeys() []string {
	keys := make([]string, 0, len(i.assets))
	for k := range i.assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Asset references one retrievable file. Source is the immutable archive
// href; the current location starts equal to Source and is rewritten once
// the file has been copied to target storage. Location access is guarded
// so the fetch engine can rewrite distinct assets concurrently.
type Asset struct {
	Key       string
	Source    string
	Title     string
	MediaType string

	mu       sync.Mutex
	location string
}

// NewAsset creates an asset whose current location is its source href.
func NewAsset(key, href, title, mediaType string) *Asset {
	return &Asset{
		Key:       key,
		Source:    href,
		Title:     title,
		MediaType: mediaType,
		location:  href,
	}
}

// Location returns the asset's current location.
func (a *Asset) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// SetLocation rewrites the asset's current location. Callers must only do
// this once the copy at loc is complete.
func (a *Asset) SetLocation(loc string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = loc
}
