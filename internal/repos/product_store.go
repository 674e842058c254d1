package repos

import (
	"errors"
	"sync"

	"vinahous/internal/domain"
)

var ErrNotFound = errors.New("not found")

// ProductStore owns the catalog for the process lifetime. The list is loaded
// once at startup; records are mutated in place by toggle and field updates.
// One RWMutex serializes all access because handlers run concurrently.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int]int
}

func NewProductStore(products []domain.Product) *ProductStore {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.STT] = i
	}
	return &ProductStore{products: products, byID: byID}
}

// List returns a copy of the catalog in load order. Callers may filter the
// copy freely without affecting the store.
func (s *ProductStore) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *ProductStore) GetByID(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// ToggleStock flips the out-of-stock flag and returns the updated record.
func (s *ProductStore) ToggleStock(id int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	s.products[i].HetHang = !s.products[i].HetHang
	return s.products[i], nil
}

// UpdateFields applies the allow-listed fields of the patch. Nil fields are
// left untouched; id, category and icon are not reachable through this path.
func (s *ProductStore) UpdateFields(id int, patch domain.ProductPatch) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	p := &s.products[i]
	if patch.TenSanPham != nil {
		p.TenSanPham = *patch.TenSanPham
	}
	if patch.QuyCache != nil {
		p.QuyCache = *patch.QuyCache
	}
	if patch.DVT != nil {
		p.DVT = *patch.DVT
	}
	if patch.GiaGoc != nil {
		p.GiaGoc = *patch.GiaGoc
	}
	if patch.ChietKhau != nil {
		p.ChietKhau = *patch.ChietKhau
	}
	if patch.GiaSauCK != nil {
		p.GiaSauCK = *patch.GiaSauCK
	}
	if patch.KhuyenMai != nil {
		p.KhuyenMai = *patch.KhuyenMai
	}
	if patch.GiaHoaGia != nil {
		p.GiaHoaGia = *patch.GiaHoaGia
	}
	if patch.HetHang != nil {
		p.HetHang = bool(*patch.HetHang)
	}
	return *p, nil
}
