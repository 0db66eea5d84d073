package validate

import (
	"errors"
	"strings"
	"testing"

	"AOSocial/internal/domain"
)

func TestContent(t *testing.T) {
	t.Parallel()

	fourImages := strings.Repeat(`<img src="x.png">`, 4)
	tests := []struct {
		name      string
		content   string
		charCount int
		want      string
	}{
		{"empty", "", 0, ReasonEmpty},
		{"too long", strings.Repeat("x", 1001), 1001, ReasonTooLong},
		{"too much media short text", fourImages, 10, ReasonTooMuchMedia},
		{"too much media no text", fourImages, 0, ReasonTooMuchMedia},
		{"too much media beats length", fourImages + strings.Repeat("x", 1500), 1500, ReasonTooMuchMedia},
		{"mixed media over limit", `<img src="a"><iframe src="b"></iframe><audio src="c"></audio><audio src="d"></audio>`, 5, ReasonTooMuchMedia},
		{"media only", `<img src="a.png">`, 0, ""},
		{"three media", strings.Repeat(`<audio src="a"></audio>`, 3), 0, ""},
		{"exactly max", strings.Repeat("x", 1000), 1000, ""},
		{"plain", "hello", 5, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Content(tc.content, tc.charCount)
			if got.Reason != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.Reason)
			}
			if got.OK() != (tc.want == "") {
				t.Fatalf("OK() disagrees with reason %q", got.Reason)
			}
		})
	}
}

func TestResultErr(t *testing.T) {
	t.Parallel()

	if err := Content("hi", 2).Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err := Content("", 0).Err()
	var rejected *domain.RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %T", err)
	}
	if rejected.Reason != ReasonEmpty || err.Error() != ReasonEmpty {
		t.Fatalf("unexpected reason: %s", rejected.Reason)
	}
}

func TestNickname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"", ReasonNicknameTooShort},
		{"a", ReasonNicknameTooShort},
		{"ab", ""},
		{"ユーザー", ""},
		{strings.Repeat("n", 32), ""},
		{strings.Repeat("n", 33), ReasonNicknameTooLong},
	}

	for _, tc := range tests {
		if got := Nickname(tc.name); got.Reason != tc.want {
			t.Fatalf("Nickname(%q): expected %q, got %q", tc.name, tc.want, got.Reason)
		}
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]bool{
		"":      true,
		"0":     true,
		"10000": true,
		"1.5":   false,
		"-3":    false,
		"12a":   false,
	} {
		if got := Number(in); got != want {
			t.Fatalf("Number(%q) = %v, want %v", in, got, want)
		}
	}
}
