package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"vinahous/internal/pricing"
)

// Transfer hands a finished order text to the outside world (the browser
// clipboard in the original page; a drop directory here).
type Transfer interface {
	Send(reference, text string) error
}

// FileTransfer writes order texts into a directory, one file per reference.
type FileTransfer struct{ Dir string }

func (t FileTransfer) Send(reference, text string) error {
	if err := os.MkdirAll(t.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(t.Dir, reference+".txt"), []byte(text), 0o644)
}

// ExportService turns a cart into a human-readable order summary.
type ExportService struct {
	Cart     *CartService
	Transfer Transfer
	Now      func() time.Time
}

func NewExportService(cart *CartService, transfer Transfer) *ExportService {
	return &ExportService{Cart: cart, Transfer: transfer, Now: time.Now}
}

// ExportResult reports the summary and whether the transfer target took it.
// Delivered=false means the caller must present the text itself (the
// blocking fallback path); the cart is cleared either way.
type ExportResult struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Delivered bool   `json:"delivered"`
}

// Export builds the order text, offers it to the transfer target, and clears
// the cart. An empty cart is rejected; a transfer failure is recovered via
// the fallback flag, never escalated.
func (s *ExportService) Export(sid string) (ExportResult, error) {
	view, err := s.Cart.View(sid)
	if err != nil {
		return ExportResult{}, err
	}
	if len(view.Lines) == 0 {
		return ExportResult{}, ErrEmptyCart
	}

	reference := uuid.NewString()
	res := ExportResult{Reference: reference, Text: s.summary(view, reference)}

	if err := s.Transfer.Send(reference, res.Text); err == nil {
		res.Delivered = true
	}
	if err := s.Cart.Clear(sid); err != nil {
		return ExportResult{}, err
	}
	return res, nil
}

func (s *ExportService) summary(view CartView, reference string) string {
	var b strings.Builder
	b.WriteString("📋 ĐƠN HÀNG VINAHOUS\n\n")
	for _, l := range view.Lines {
		fmt.Fprintf(&b, "%s - SL: %d %s - Giá: %s\n",
			l.Name, l.Quantity, l.DVT, pricing.FormatVND(l.Price*int64(l.Quantity)))
	}
	fmt.Fprintf(&b, "\n💰 TỔNG CỘNG: %s\n", pricing.FormatVND(view.Total))
	fmt.Fprintf(&b, "\n🕐 Thời gian: %s\n", s.Now().Format("15:04:05 02/01/2006"))
	fmt.Fprintf(&b, "🔖 Mã đơn: %s\n", reference)
	return b.String()
}
