package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stac-tools/stac-fetch/storage"
)

// Generate mocks of dependencies
//
//go:generate moq -rm -pkg catalog_test -out moq_store_test.go . DocumentStore

// DocumentStore persists one document per tree node under a key derived
// from the node's position in the tree.
type DocumentStore interface {
	Put(ctx context.Context, key string, document any) error
	Get(ctx context.Context, key string, document any) error
}

// ErrPersistence wraps document store failures surfaced from Save and Load.
var ErrPersistence = errors.New("persistence failed")

const (
	stacVersion = "1.0.0"
	catalogKey  = "catalog.json"

	typeCatalog    = "Catalog"
	typeCollection = "Collection"
	typeItem       = "Feature"

	mediaTypeJSON = "application/json"
)

func collectionKey(collectionID string) string {
	return collectionID + "/collection.json"
}

func itemKey(collectionID, itemID string) string {
	return collectionID + "/" + itemID + "/item.json"
}

// Save serializes the full tree to store, one document per node plus
// cross-document links. Extension fields are validated against the
// document schema before anything is written.
func Save(ctx context.Context, store DocumentStore, cat *Catalog) error {
	collections := cat.Collections()

	for _, col := range collections {
		if err := validateExtensions(col.Extensions); err != nil {
			return fmt.Errorf("collection %q: %w", col.ID, err)
		}
		for _, item := range col.Items() {
			if err := validateExtensions(item.Extensions); err != nil {
				return fmt.Errorf("item %q: %w", item.ID, err)
			}
		}
	}

	catDoc := storage.CatalogDocument{
		Type:        typeCatalog,
		StacVersion: stacVersion,
		ID:          cat.ID,
		Title:       cat.Title,
		Description: cat.Description,
		Links: []storage.Link{
			{Rel: storage.RelSelf, Href: catalogKey, Type: mediaTypeJSON},
			{Rel: storage.RelRoot, Href: catalogKey, Type: mediaTypeJSON},
		},
	}
	for _, col := range collections {
		catDoc.Links = append(catDoc.Links, storage.Link{
			Rel:   storage.RelChild,
			Href:  collectionKey(col.ID),
			Type:  mediaTypeJSON,
			Title: col.Title,
		})
	}
	if err := store.Put(ctx, catalogKey, &catDoc); err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrPersistence, catalogKey, err)
	}

	for _, col := range collections {
		colDoc := collectionDocument(col)
		key := collectionKey(col.ID)
		if err := store.Put(ctx, key, &colDoc); err != nil {
			return fmt.Errorf("%w: write %q: %w", ErrPersistence, key, err)
		}

		for _, item := range col.Items() {
			itemDoc := itemDocument(col.ID, item)
			key := itemKey(col.ID, item.ID)
			if err := store.Put(ctx, key, &itemDoc); err != nil {
				return fmt.Errorf("%w: write %q: %w", ErrPersistence, key, err)
			}
		}
	}

	return nil
}

// Load rebuilds a tree from store by following the cross-document links
// written by Save. The reloaded tree carries identical identifiers,
// metadata, and current asset locations.
func Load(ctx context.Context, store DocumentStore) (*Catalog, error) {
	var catDoc storage.CatalogDocument
	if err := store.Get(ctx, catalogKey, &catDoc); err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrPersistence, catalogKey, err)
	}

	cat := New(catDoc.ID, catDoc.Title, catDoc.Description)

	for _, link := range catDoc.Links {
		if link.Rel != storage.RelChild {
			continue
		}

		var colDoc storage.CollectionDocument
		if err := store.Get(ctx, link.Href, &colDoc); err != nil {
			return nil, fmt.Errorf("%w: read %q: %w", ErrPersistence, link.Href, err)
		}

		col := NewCollection(colDoc.ID, colDoc.Title, colDoc.Description, colDoc.Provider)
		col.Extensions = colDoc.Extensions
		if err := cat.AddCollection(col); err != nil {
			return nil, err
		}

		for _, itemLink := range colDoc.Links {
			if itemLink.Rel != storage.RelItem {
				continue
			}

			var itemDoc storage.ItemDocument
			if err := store.Get(ctx, itemLink.Href, &itemDoc); err != nil {
				return nil, fmt.Errorf("%w: read %q: %w", ErrPersistence, itemLink.Href, err)
			}

			item, err := itemFromDocument(&itemDoc)
			if err != nil {
				return nil, err
			}
			if err := col.AddItem(item); err != nil {
				return nil, err
			}
		}
	}

	return cat, nil
}

func collectionDocument(col *Collection) storage.CollectionDocument {
	doc := storage.CollectionDocument{
		Type:        typeCollection,
		StacVersion: stacVersion,
		ID:          col.ID,
		Title:       col.Title,
		Description: col.Description,
		Provider:    col.Provider,
		Extensions:  col.Extensions,
		Links: []storage.Link{
			{Rel: storage.RelSelf, Href: collectionKey(col.ID), Type: mediaTypeJSON},
			{Rel: storage.RelRoot, Href: catalogKey, Type: mediaTypeJSON},
			{Rel: storage.RelParent, Href: catalogKey, Type: mediaTypeJSON},
		},
	}
	for _, item := range col.Items() {
		doc.Links = append(doc.Links, storage.Link{
			Rel:  storage.RelItem,
			Href: itemKey(col.ID, item.ID),
			Type: mediaTypeJSON,
		})
	}
	return doc
}

func itemDocument(collectionID string, item *Item) storage.ItemDocument {
	doc := storage.ItemDocument{
		Type:        typeItem,
		StacVersion: stacVersion,
		ID:          item.ID,
		BBox:        item.BBox[:],
		Geometry:    bboxGeometry(item.BBox),
		Properties: storage.ItemProperties{
			Datetime:   item.Datetime.UTC().Format(time.RFC3339),
			Extensions: item.Extensions,
		},
		Assets: make(map[string]storage.Asset, len(item.assets)),
		Links: []storage.Link{
			{Rel: storage.RelSelf, Href: itemKey(collectionID, item.ID), Type: mediaTypeJSON},
			{Rel: storage.RelRoot, Href: catalogKey, Type: mediaTypeJSON},
			{Rel: storage.RelParent, Href: collectionKey(collectionID), Type: mediaTypeJSON},
		},
	}
	for key, a := range item.assets {
		doc.Assets[key] = storage.Asset{
			Href:      a.Location(),
			Source:    a.Source,
			Title:     a.Title,
			MediaType: a.MediaType,
		}
	}
	return doc
}

func itemFromDocument(doc *storage.ItemDocument) (*Item, error) {
	ts, err := time.Parse(time.RFC3339, doc.Properties.Datetime)
	if err != nil {
		return nil, fmt.Errorf("item %q datetime: %w", doc.ID, err)
	}

	var bbox [4]float64
	copy(bbox[:], doc.BBox)

	assets := make([]*Asset, 0, len(doc.Assets))
	for key, da := range doc.Assets {
		source := da.Source
		if source == "" {
			source = da.Href
		}
		a := NewAsset(key, source, da.Title, da.MediaType)
		a.SetLocation(da.Href)
		assets = append(assets, a)
	}

	item, err := NewItem(doc.ID, bbox, ts, assets)
	if err != nil {
		return nil, err
	}
	item.Extensions = doc.Properties.Extensions
	return item, nil
}

func bboxGeometry(bbox [4]float64) *storage.Geometry {
	minLon, minLat, maxLon, maxLat := bbox[0], bbox[1], bbox[2], bbox[3]
	return &storage.Geometry{
		Type: "Polygon",
		Coordinates: [][][2]float64{{
			{minLon, minLat},
			{maxLon, minLat},
			{maxLon, maxLat},
			{minLon, maxLat},
			{minLon, minLat},
		}},
	}
}

// validateExtensions enforces the document schema for extension maps:
// namespaced keys ("prefix:name") with scalar values.
func validateExtensions(ext map[string]any) error {
	for k, v := range ext {
		if !strings.Contains(k, ":") {
			return fmt.Errorf("%w: key %q is not namespaced", ErrInvalidExtension, k)
		}
		switch v.(type) {
		case string, bool, int, int64, float64:
		default:
			return fmt.Errorf("%w: key %q holds a non-scalar value", ErrInvalidExtension, k)
		}
	}
	return nil
}
