package pricing

import (
	"strings"

	"vinahous/internal/domain"
)

// Parse extracts a minor-unit amount from a formatted price string by keeping
// only its digits: "54.400 đ" -> 54400. A string with no digits parses to 0.
// This never fails; tolerating malformed source data is intentional, the
// catalog contains hand-edited price labels.
func Parse(s string) int64 {
	var n int64
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int64(r-'0')
			seen = true
		}
	}
	if !seen {
		return 0
	}
	return n
}

// Resolve returns a product's effective sale price in minor units: the final
// promo price when set, else the after-discount price, else 0 ("contact for
// price").
func Resolve(p domain.Product) int64 {
	if p.GiaHoaGia != "" {
		return Parse(p.GiaHoaGia)
	}
	if p.GiaSauCK != "" {
		return Parse(p.GiaSauCK)
	}
	return 0
}

// FormatVND renders a minor-unit amount the way the storefront does:
// dot-separated thousands with a trailing đ, e.g. 54400 -> "54.400 đ".
func FormatVND(n int64) string {
	digits := []byte{}
	if n == 0 {
		digits = []byte{'0'}
	}
	for v := n; v > 0; v /= 10 {
		digits = append(digits, byte('0'+v%10))
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			b.WriteByte('.')
		}
	}
	return b.String() + " đ"
}
