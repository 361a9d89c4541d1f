package query

import (
	"encoding/json"
	"fmt"
)

// Project applies p to the JSON form of v. Included projections always keep "id".
func Project(v any, p Projection) (any, error) {
	if p.Empty() {
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal for projection: %w", err)
	}
	var doc any
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal for projection: %w", err)
	}

	switch d := doc.(type) {
	case []any:
		for i, item := range d {
			if m, ok := item.(map[string]any); ok {
				d[i] = p.apply(m)
			}
		}
		return d, nil
	case map[string]any:
		return p.apply(d), nil
	default:
		return doc, nil
	}
}

func (p Projection) apply(m map[string]any) map[string]any {
	if p.Exclude {
		for _, f := range p.Fields {
			delete(m, f)
		}
		return m
	}

	out := make(map[string]any, len(p.Fields)+1)
	if id, ok := m["id"]; ok {
		out["id"] = id
	}
	for _, f := range p.Fields {
		if v, ok := m[f]; ok {
			out[f] = v
		}
	}
	return out
}
