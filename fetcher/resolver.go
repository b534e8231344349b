package fetcher

import (
	"net/url"
	"path"

	"github.com/stac-tools/stac-fetch/catalog"
)

// Resolver computes source and target locations for a named asset on an
// item. It performs no I/O; the engine relies on its determinism for
// idempotence, so identical inputs must always resolve to identical
// target keys.
type Resolver struct {
	// Root is the key prefix under which fetched assets are written.
	Root string
}

// Resolve returns the asset's source href and its canonical target key:
// {root}/{collection-id}/{item-id}/{key}{ext}, with the extension taken
// from the source href.
func (r Resolver) Resolve(collectionID string, item *catalog.Item, key string) (source, target string, err error) {
	a, err := item.Asset(key)
	if err != nil {
		return "", "", err
	}

	return a.Source, path.Join(r.Root, collectionID, item.ID, key+sourceExtension(a.Source)), nil
}

// sourceExtension extracts the file extension from an href, ignoring any
// query or fragment.
func sourceExtension(href string) string {
	if u, err := url.Parse(href); err == nil {
		return path.Ext(u.Path)
	}
	return path.Ext(href)
}
