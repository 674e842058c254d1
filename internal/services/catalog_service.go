package services

import (
	"math"
	"strings"

	"vinahous/internal/domain"
	"vinahous/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductStore
}

func NewCatalogService(prods *repos.ProductStore) *CatalogService {
	return &CatalogService{Prods: prods}
}

// FilterQuery is the catalog-listing contract shared with the browser page.
// Absent fields match everything; predicates compose with AND.
type FilterQuery struct {
	Search         string
	Category       string
	HideOutOfStock bool
}

// Filter returns the filtered catalog in original load order. Pure: operates
// on the store's snapshot copy, mutates nothing.
func (s *CatalogService) Filter(q FilterQuery) []domain.Product {
	return filterProducts(s.Prods.List(), q)
}

func filterProducts(products []domain.Product, q FilterQuery) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.TenSanPham), search) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if q.HideOutOfStock && p.HetHang {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stats computes live stock figures from the store; nothing is cached.
func (s *CatalogService) Stats() domain.Stats {
	products := s.Prods.List()
	st := domain.Stats{Total: len(products)}
	for _, p := range products {
		if p.HetHang {
			st.OutOfStock++
		} else {
			st.InStock++
		}
	}
	if st.Total > 0 {
		st.StockPercentage = int(math.Round(float64(st.InStock) / float64(st.Total) * 100))
	}
	return st
}
