package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"vinahous/internal/services"
)

type stubTransfer struct {
	fail bool
	got  string
}

func (t *stubTransfer) Send(reference, text string) error {
	if t.fail {
		return errors.New("clipboard unavailable")
	}
	t.got = text
	return nil
}

func exportFixture(t *testing.T, transfer services.Transfer) *services.ExportService {
	t.Helper()
	cart, _ := cartFixture(t)
	svc := services.NewExportService(cart, transfer)
	svc.Now = func() time.Time { return time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestExportBuildsSummaryAndClears(t *testing.T) {
	tr := &stubTransfer{}
	svc := exportFixture(t, tr)
	sid := "s1"
	if _, err := svc.Cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}

	res, err := svc.Export(sid)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Delivered {
		t.Fatal("transfer should have succeeded")
	}
	if res.Reference == "" {
		t.Fatal("missing order reference")
	}
	for _, want := range []string{
		"ĐƠN HÀNG VINAHOUS",
		"Led Trụ 20W - SL: 2 bóng - Giá: 108.800 đ",
		"TỔNG CỘNG: 108.800 đ",
		"09:30:00 03/11/2025",
		res.Reference,
	} {
		if !strings.Contains(res.Text, want) {
			t.Errorf("summary missing %q:\n%s", want, res.Text)
		}
	}
	if tr.got != res.Text {
		t.Fatal("transfer did not receive the summary")
	}

	view, err := svc.Cart.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("cart must be cleared after export: %+v", view)
	}
}

func TestExportTransferFailureFallsBackAndStillClears(t *testing.T) {
	svc := exportFixture(t, &stubTransfer{fail: true})
	sid := "s1"
	if _, err := svc.Cart.Add(sid, 1); err != nil {
		t.Fatal(err)
	}

	res, err := svc.Export(sid)
	if err != nil {
		t.Fatal(err)
	}
	if res.Delivered {
		t.Fatal("transfer failure must be reported via Delivered=false")
	}
	if res.Text == "" {
		t.Fatal("fallback needs the summary text")
	}

	view, err := svc.Cart.View(sid)
	if err != nil {
		t.Fatal(err)
	}
	if view.ItemCount != 0 {
		t.Fatal("cart must be cleared on the fallback path too")
	}
}

func TestExportEmptyCart(t *testing.T) {
	svc := exportFixture(t, &stubTransfer{})
	if _, err := svc.Export("s1"); !errors.Is(err, services.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}
