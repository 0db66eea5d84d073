package format

import (
	"testing"
	"time"

	"AOSocial/internal/domain"
)

func fixedFormatter(now time.Time) *Formatter {
	return &Formatter{
		Now:      func() time.Time { return now },
		Location: time.UTC,
	}
}

func TestRelative(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	f := fixedFormatter(now)
	base := domain.Timestamp(now.Unix())

	tests := []struct {
		name   string
		ts     domain.Timestamp
		suffix bool
		want   string
	}{
		{"now", base, false, "just now"},
		{"now with suffix", base, true, "just now"},
		{"future", base + 120, true, "just now"},
		{"seconds", base - 30, true, "30s ago"},
		{"seconds no suffix", base - 30, false, "30s"},
		{"minutes", base - 125, false, "2m"},
		{"hour drops minutes", base - 3661, false, "1h"},
		{"hours with suffix", base - 5*3600, true, "5h ago"},
		{"just under a day", base - 86399, false, "23h"},
		{"exactly one day", base - 86400, true, "Mar 9"},
		{"months", base - 40*86400, false, "Jan 29"},
		{"365 days", base - 365*86400, false, "Mar 10"},
		{"366 days", base - 366*86400, false, "3/9/2024, 12:00:00 PM"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := f.Relative(tc.ts, tc.suffix); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRelativeUsesLocation(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	f := fixedFormatter(now)
	f.Location = time.FixedZone("UTC+13", 13*3600)

	// 2025-03-08 12:00 UTC is already March 9 at UTC+13
	ts := domain.Timestamp(now.Add(-48 * time.Hour).Unix())
	if got := f.Relative(ts, false); got != "Mar 9" {
		t.Fatalf("unexpected zoned date: %s", got)
	}
}

func TestFormatRelativeWallClock(t *testing.T) {
	t.Parallel()

	if got := FormatRelative(domain.Timestamp(time.Now().Unix()+5), false); got != "just now" {
		t.Fatalf("expected just now, got %s", got)
	}
}

func TestNumberWithCommas(t *testing.T) {
	t.Parallel()

	for in, want := range map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-45000:  "-45,000",
	} {
		if got := NumberWithCommas(in); got != want {
			t.Fatalf("NumberWithCommas(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatBalance(t *testing.T) {
	t.Parallel()

	v, err := FormatBalance("123456", 3)
	if err != nil {
		t.Fatalf("FormatBalance error: %v", err)
	}
	if v != 123.456 {
		t.Fatalf("unexpected balance: %v", v)
	}

	v, err = FormatBalance("", 3)
	if err != nil || v != 0 {
		t.Fatalf("expected empty balance to be zero, got %v (%v)", v, err)
	}

	if _, err := FormatBalance("abc", 3); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBalanceString(t *testing.T) {
	t.Parallel()

	if got := BalanceString(1234567.5, 3); got != "1,234,567.5" {
		t.Fatalf("unexpected string: %s", got)
	}
	if got := BalanceString(10000, 3); got != "10,000" {
		t.Fatalf("unexpected string: %s", got)
	}
	if got := BalanceString(2.71828, 3); got != "2.718" {
		t.Fatalf("unexpected string: %s", got)
	}
}
