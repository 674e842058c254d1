// Package dataset loads the embedded product catalog. The data is a JSON
// conversion of the supplier's CSV price list; records are decorated once at
// load time and never re-read.
package dataset

import (
	_ "embed"
	"encoding/json"
	"strings"

	"vinahous/internal/domain"
)

//go:embed products.json
var raw []byte

// Load parses the embedded catalog, fills in derived category and icon,
// defaults the stock flag, and drops records without a display name (the
// source CSV carries empty spacer rows).
func Load() ([]domain.Product, error) {
	var all []domain.Product
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if strings.TrimSpace(p.TenSanPham) == "" {
			continue
		}
		p.Category = domain.CategoryOf(p.TenSanPham)
		if p.Icon == "" {
			p.Icon = domain.IconFor(p.Category)
		}
		out = append(out, p)
	}
	return out, nil
}
