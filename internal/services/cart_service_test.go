package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"vinahous/internal/domain"
	"vinahous/internal/repos"
	"vinahous/internal/services"
)

func cartFixture(t *testing.T) (*services.CartService, *repos.ProductStore) {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE cart_blobs(key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TEXT)`); err != nil {
		t.Fatal(err)
	}
	prods := repos.NewProductStore([]domain.Product{
		{STT: 1, TenSanPham: "Led Trụ 20W", DVT: "bóng", GiaSauCK: "64.000 đ", GiaHoaGia: "54.400 đ"},
		{STT: 2, TenSanPham: "Ổ Cắm Dài 3m", DVT: "cái", GiaSauCK: "80.750 đ", HetHang: true},
		{STT: 3, TenSanPham: "Hộp Nối Điện", DVT: "cái"},
	})
	return services.NewCartService(repos.NewCartStore(db), prods), prods
}

func TestAddSameProductTwiceIncrements(t *testing.T) {
	cart, _ := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err := cart.Add(sid, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("want one line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 2 {
		t.Fatalf("want quantity 2, got %d", view.Lines[0].Quantity)
	}
	if view.Total != 2*54400 {
		t.Fatalf("want total %d, got %d", 2*54400, view.Total)
	}
	if view.ItemCount != 2 {
		t.Fatalf("want item count 2, got %d", view.ItemCount)
	}
}

func TestAddSnapshotsPrice(t *testing.T) {
	cart, prods := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	// Catalog price changes must not reach existing lines.
	newPrice := "99.000 đ"
	if _, err := prods.UpdateFields(1, domain.ProductPatch{GiaHoaGia: &newPrice}); err != nil {
		t.Fatal(err)
	}
	view, err := cart.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if view.Lines[0].Price != 54400 {
		t.Fatalf("price not snapshotted: %d", view.Lines[0].Price)
	}
	// A fresh add in another session picks up the new price.
	other, err := cart.Add("s2", 1)
	if err != nil {
		t.Fatal(err)
	}
	if other.Lines[0].Price != 99000 {
		t.Fatalf("new line should use current price, got %d", other.Lines[0].Price)
	}
}

func TestAddRejections(t *testing.T) {
	cart, _ := cartFixture(t)
	if _, err := cart.Add("s1", 99); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := cart.Add("s1", 2); !errors.Is(err, services.ErrOutOfStock) {
		t.Fatalf("want ErrOutOfStock, got %v", err)
	}
	if _, err := cart.Add("s1", 3); !errors.Is(err, services.ErrUnpriced) {
		t.Fatalf("want ErrUnpriced, got %v", err)
	}
	view, err := cart.View("s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("rejected adds must not touch the cart: %+v", view.Lines)
	}
}

func TestUpdateQuantityReplaces(t *testing.T) {
	cart, _ := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err := cart.UpdateQuantity(sid, 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	if view.Lines[0].Quantity != 7 || view.Total != 7*54400 {
		t.Fatalf("replacement failed: %+v", view)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	cart, _ := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err := cart.UpdateQuantity(sid, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("quantity 0 must remove the line: %+v", view.Lines)
	}
	// Same for negatives.
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err = cart.UpdateQuantity(sid, 1, -3)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("negative quantity must remove the line: %+v", view.Lines)
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart, _ := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err := cart.UpdateQuantity(sid, 42, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 1 {
		t.Fatalf("no-op expected: %+v", view)
	}
}

func TestRemoveAndClear(t *testing.T) {
	cart, _ := cartFixture(t)
	sid := "s1"
	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	view, err := cart.Remove(sid, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("remove failed: %+v", view)
	}

	if _, err := cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	if err := cart.Clear(sid); err != nil {
		t.Fatal(err)
	}
	view, err = cart.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if view.ItemCount != 0 || view.Total != 0 {
		t.Fatalf("clear failed: %+v", view)
	}
}

func TestCartSurvivesReload(t *testing.T) {
	cart, prods := cartFixture(t)
	sid := "s1"
	for i := 0; i < 3; i++ {
		if _, err := cart.Add(sid, 1); err != nil {
			t.Fatal(err)
		}
	}
	before, err := cart.View(sid)
	if err != nil {
		t.Fatal(err)
	}

	// A new service over the same store simulates a session restart.
	reloaded := services.NewCartService(cart.Carts, prods)
	after, err := reloaded.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if after.Total != before.Total || after.ItemCount != before.ItemCount {
		t.Fatalf("reload changed totals: before=%+v after=%+v", before, after)
	}
}
