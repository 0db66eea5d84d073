package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// NumberWithCommas renders n with thousands separators.
func NumberWithCommas(n int64) string {
	return humanize.Comma(n)
}

// FormatBalance scales a raw integer token balance down by its denomination.
func FormatBalance(raw string, denomination int) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance %q: %w", raw, err)
	}
	if denomination <= 0 {
		return v, nil
	}
	return v / math.Pow10(denomination), nil
}

// BalanceString rounds v to decimals places and adds thousands separators.
// Trailing zeros are dropped.
func BalanceString(v float64, decimals int) string {
	if decimals >= 0 {
		scale := math.Pow10(decimals)
		v = math.Round(v*scale) / scale
	}
	return humanize.Commaf(v)
}
