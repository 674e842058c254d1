package services

import (
	"vinahous/internal/domain"
	"vinahous/internal/pricing"
	"vinahous/internal/repos"
)

// CartService is the reducer over a session's cart lines. Every mutation is
// persisted before it is reported back; a failed persist surfaces as an error
// and the caller must not present the new state.
type CartService struct {
	Carts *repos.CartStore
	Prods *repos.ProductStore
}

func NewCartService(carts *repos.CartStore, prods *repos.ProductStore) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// CartView is the derived read model: lines plus recomputed totals. Totals
// are never stored, so they cannot drift from the line list.
type CartView struct {
	Lines     []domain.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Total     int64             `json:"total"`
}

func viewOf(lines []domain.CartLine) CartView {
	v := CartView{Lines: lines}
	if v.Lines == nil {
		v.Lines = []domain.CartLine{}
	}
	for _, l := range lines {
		v.ItemCount += l.Quantity
		v.Total += l.Price * int64(l.Quantity)
	}
	return v
}

func (s *CartService) View(sid string) (CartView, error) {
	lines, err := s.Carts.Load(sid)
	if err != nil {
		return CartView{}, err
	}
	return viewOf(lines), nil
}

// Add puts one unit of the product into the cart. The unit price is resolved
// and snapshotted now; later catalog price edits never touch existing lines.
// Unknown, out-of-stock and unpriced products are rejected.
func (s *CartService) Add(sid string, productID int) (CartView, error) {
	p, err := s.Prods.GetByID(productID)
	if err != nil {
		return CartView{}, err
	}
	if p.HetHang {
		return CartView{}, ErrOutOfStock
	}
	price := pricing.Resolve(p)
	if price == 0 {
		return CartView{}, ErrUnpriced
	}
	lines, err := s.Carts.Load(sid)
	if err != nil {
		return CartView{}, err
	}
	found := false
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{
			ID:       productID,
			Name:     p.TenSanPham,
			Price:    price,
			Quantity: 1,
			DVT:      p.DVT,
		})
	}
	if err := s.Carts.Save(sid, lines); err != nil {
		return CartView{}, err
	}
	return viewOf(lines), nil
}

// UpdateQuantity replaces a line's quantity. Zero or negative removes the
// line; an id not in the cart is a no-op.
func (s *CartService) UpdateQuantity(sid string, productID, qty int) (CartView, error) {
	if qty <= 0 {
		return s.Remove(sid, productID)
	}
	lines, err := s.Carts.Load(sid)
	if err != nil {
		return CartView{}, err
	}
	changed := false
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity = qty
			changed = true
			break
		}
	}
	if changed {
		if err := s.Carts.Save(sid, lines); err != nil {
			return CartView{}, err
		}
	}
	return viewOf(lines), nil
}

// Remove drops the line regardless of quantity.
func (s *CartService) Remove(sid string, productID int) (CartView, error) {
	lines, err := s.Carts.Load(sid)
	if err != nil {
		return CartView{}, err
	}
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != productID {
			kept = append(kept, l)
		}
	}
	if err := s.Carts.Save(sid, kept); err != nil {
		return CartView{}, err
	}
	return viewOf(kept), nil
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(sid string) error {
	return s.Carts.Save(sid, nil)
}
