package domain

import (
	"fmt"
	"strings"
)

// Product mirrors the catalog record shape of the original CSV export.
// The Vietnamese JSON field names are the wire contract and must not change:
// the browser page and previously stored carts both depend on them.
type Product struct {
	STT        int    `json:"stt"`
	TenSanPham string `json:"tenSanPham"`
	QuyCache   string `json:"quyCache"`
	DVT        string `json:"dvt"`
	GiaGoc     string `json:"giaGoc"`
	ChietKhau  string `json:"chietKhau"`
	GiaSauCK   string `json:"giaSauCK"`
	KhuyenMai  string `json:"khuyenMai"`
	GiaHoaGia  string `json:"giaHoaGia"`
	SoLuongTon int    `json:"soLuongTon,omitempty"`
	HetHang    bool   `json:"hetHang"`
	Category   string `json:"category"`
	Icon       string `json:"icon"`
}

// ProductPatch carries the allow-listed mutable fields of a product update.
// Nil means "leave untouched"; id and category are deliberately absent.
type ProductPatch struct {
	TenSanPham *string   `json:"tenSanPham"`
	QuyCache   *string   `json:"quyCache"`
	DVT        *string   `json:"dvt"`
	GiaGoc     *string   `json:"giaGoc"`
	ChietKhau  *string   `json:"chietKhau"`
	GiaSauCK   *string   `json:"giaSauCK"`
	KhuyenMai  *string   `json:"khuyenMai"`
	GiaHoaGia  *string   `json:"giaHoaGia"`
	HetHang    *FlexBool `json:"hetHang"`
}

// FlexBool accepts a JSON boolean or the strings "true"/"false". One client
// variant posted the stock flag as a string; the canonical form is a boolean.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", `"true"`:
		*b = true
	case "false", `"false"`:
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", string(data))
	}
	return nil
}

// CartLine is one cart entry: product id plus the name, unit label and unit
// price snapshotted when the line was added. Price is in minor currency units.
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	DVT      string `json:"dvt"`
}

// CartBlobVersion is the current persisted cart schema version.
const CartBlobVersion = 1

// CartBlob is the persisted representation of a cart.
type CartBlob struct {
	Version int        `json:"version"`
	Lines   []CartLine `json:"lines"`
}

// Stats summarizes the live stock state of the catalog.
type Stats struct {
	Total           int `json:"total"`
	InStock         int `json:"inStock"`
	OutOfStock      int `json:"outOfStock"`
	StockPercentage int `json:"stockPercentage"`
}
