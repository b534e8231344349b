package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest is the declarative definition of a dataset catalog. It is
// configuration data: building a catalog from it is pure population of
// the tree, no I/O beyond reading the manifest itself.
type Manifest struct {
	Dataset struct {
		ID          string `yaml:"id"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Provider    string `yaml:"provider"`
		Citation    string `yaml:"citation"`
	} `yaml:"dataset"`

	Archive struct {
		BaseURL string `yaml:"base_url"`
		// FilenamePattern supports the placeholders {dataset},
		// {region}, {parameter}, {year} and {ext}.
		FilenamePattern string `yaml:"filename_pattern"`
		Extension       string `yaml:"extension"`
	} `yaml:"archive"`

	Parameters []ManifestParameter `yaml:"parameters"`
	Regions    []ManifestRegion    `yaml:"regions"`
	Years      []int               `yaml:"years"`
}

// ManifestParameter describes one asset key shared by all items.
type ManifestParameter struct {
	Key       string `yaml:"key"`
	Title     string `yaml:"title"`
	MediaType string `yaml:"media_type"`
}

// ManifestRegion describes one collection and the footprint of its items.
type ManifestRegion struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	BBox        [4]float64 `yaml:"bbox"`
	EPSG        int        `yaml:"epsg"`
	// Parameters restricts this region to a subset of the dataset
	// parameters. Empty means all of them.
	Parameters []string `yaml:"parameters,omitempty"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// Build compiles the manifest into a catalog tree: one collection per
// region, one item per (region, year), one asset per parameter.
func (m *Manifest) Build() (*Catalog, error) {
	if m.Dataset.ID == "" {
		return nil, fmt.Errorf("manifest: dataset id is required")
	}
	if m.Archive.BaseURL == "" || m.Archive.FilenamePattern == "" {
		return nil, fmt.Errorf("manifest: archive base_url and filename_pattern are required")
	}

	cat := New(m.Dataset.ID, m.Dataset.Title, m.Dataset.Description)

	for _, region := range m.Regions {
		col := NewCollection(region.ID, region.Title, region.Description, m.Dataset.Provider)
		if m.Dataset.Citation != "" {
			col.Extensions = map[string]any{"sci:citation": m.Dataset.Citation}
		}
		if err := cat.AddCollection(col); err != nil {
			return nil, err
		}

		params := m.regionParameters(region)

		for _, year := range m.Years {
			assets := make([]*Asset, 0, len(params))
			for _, p := range params {
				assets = append(assets, NewAsset(
					p.Key,
					m.assetHref(region.ID, p.Key, year),
					p.Title,
					p.MediaType,
				))
			}

			item, err := NewItem(
				fmt.Sprintf("%s-%d", region.ID, year),
				region.BBox,
				time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				assets,
			)
			if err != nil {
				return nil, err
			}
			if region.EPSG != 0 {
				item.Extensions = map[string]any{"proj:epsg": region.EPSG}
			}
			if err := col.AddItem(item); err != nil {
				return nil, err
			}
		}
	}

	return cat, nil
}

func (m *Manifest) regionParameters(region ManifestRegion) []ManifestParameter {
	if len(region.Parameters) == 0 {
		return m.Parameters
	}

	wanted := make(map[string]bool, len(region.Parameters))
	for _, k := range region.Parameters {
		wanted[k] = true
	}

	out := make([]ManifestParameter, 0, len(region.Parameters))
	for _, p := range m.Parameters {
		if wanted[p.Key] {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manifest) assetHref(regionID, parameter string, year int) string {
	name := strings.NewReplacer(
		"{dataset}", m.Dataset.ID,
		"{region}", regionID,
		"{parameter}", parameter,
		"{year}", strconv.Itoa(year),
		"{ext}", m.Archive.Extension,
	).Replace(m.Archive.FilenamePattern)

	return strings.TrimRight(m.Archive.BaseURL, "/") + "/" + name
}
