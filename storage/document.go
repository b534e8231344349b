package storage

// CatalogDocument is the persisted form of a catalog root.
// JSON looks like this:
//
//	{
//	    "type": "Catalog",
//	    "stac_version": "1.0.0",
//	    "id": "era5-demo",
//	    "title": "ERA5 demonstration catalog",
//	    "description": "...",
//	    "links": [
//	        {"rel": "self", "href": "catalog.json"},
//	        {"rel": "child", "href": "uk/collection.json"}
//	    ]
//	}
type CatalogDocument struct {
	Type        string `json:"type"`
	StacVersion string `json:"stac_version"`
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Links       []Link `json:"links"`
}

// CollectionDocument is the persisted form of a collection node.
// Item documents are referenced through "item" links.
type CollectionDocument struct {
	Type        string         `json:"type"`
	StacVersion string         `json:"stac_version"`
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Provider    string         `json:"provider,omitempty"`
	Extensions  map[string]any `json:"extensions,omitempty"`
	Links       []Link         `json:"links"`
}

// ItemDocument is the persisted form of an item node. Assets are embedded
// rather than linked; the href of each asset is the asset's current
// location at the time the document was written.
type ItemDocument struct {
	Type        string           `json:"type"`
	StacVersion string           `json:"stac_version"`
	ID          string           `json:"id"`
	BBox        []float64        `json:"bbox,omitempty"`
	Geometry    *Geometry        `json:"geometry,omitempty"`
	Properties  ItemProperties   `json:"properties"`
	Assets      map[string]Asset `json:"assets"`
	Links       []Link           `json:"links"`
}

// ItemProperties carries the item timestamp plus any namespaced extension
// fields (for example "proj:epsg" or "sci:citation").
type ItemProperties struct {
	Datetime   string         `json:"datetime"`
	Extensions map[string]any `json:"-"`
}

// Geometry is a GeoJSON-style bounding polygon.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// Asset is the persisted form of a single retrievable file reference.
type Asset struct {
	Href      string `json:"href"`
	Source    string `json:"source_href,omitempty"`
	Title     string `json:"title,omitempty"`
	MediaType string `json:"type,omitempty"`
}

// Link relates one persisted document to another.
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Link relation values used across documents.
const (
	RelSelf   = "self"
	RelRoot   = "root"
	RelParent = "parent"
	RelChild  = "child"
	RelItem   = "item"
)
