package domain

import "strings"

// Catalog categories. Slugs, stable on the wire.
const (
	CategoryLighting        = "lighting"
	CategorySolar           = "solar"
	CategorySockets         = "sockets"
	CategoryCircuitBreakers = "circuit-breakers"
	CategoryTools           = "tools"
	CategoryMosquitoRackets = "mosquito-rackets"
	CategoryOther           = "other"
)

// Ordered substring groups. Check order matters: solar lamps carry "đèn" and
// belong to lighting, so lighting is matched first.
var categoryHints = []struct {
	category string
	hints    []string
}{
	{CategoryLighting, []string{"led", "đèn", "búp", "âm trần"}},
	{CategorySolar, []string{"năng lượng mặt trời"}},
	{CategorySockets, []string{"ổ cắm", "phích", "ổ dài", "ổ quay"}},
	{CategoryCircuitBreakers, []string{"chống giật", "cb cóc", "hộp"}},
	{CategoryTools, []string{"đá cắt", "khoan", "cưa", "kéo", "kìm", "khò", "nhám"}},
	{CategoryMosquitoRackets, []string{"vợt muỗi"}},
}

// CategoryOf derives a product's category from its display name. Pure and
// deterministic; computed once at load time and never again.
func CategoryOf(name string) string {
	lower := strings.ToLower(name)
	for _, g := range categoryHints {
		for _, h := range g.hints {
			if strings.Contains(lower, h) {
				return g.category
			}
		}
	}
	return CategoryOther
}

var categoryIcons = map[string]string{
	CategoryLighting:        "💡",
	CategorySolar:           "☀️",
	CategorySockets:         "🔌",
	CategoryCircuitBreakers: "⚡",
	CategoryTools:           "⚙️",
	CategoryMosquitoRackets: "🦟",
	CategoryOther:           "⚙️",
}

// IconFor returns the display icon for a category.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return categoryIcons[CategoryOther]
}
