package storage

import "encoding/json"

// MarshalJSON flattens extension fields into the properties object next to
// the datetime, which is how consumers of the document format expect
// namespaced fields (e.g. "proj:epsg") to appear.
func (p ItemProperties) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		out[k] = v
	}
	out["datetime"] = p.Datetime
	return json.Marshal(out)
}

// UnmarshalJSON splits the flattened properties object back into the
// datetime and the extension map.
func (p *ItemProperties) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if dt, ok := raw["datetime"].(string); ok {
		p.Datetime = dt
	}
	delete(raw, "datetime")
	if len(raw) > 0 {
		p.Extensions = raw
	}
	return nil
}
