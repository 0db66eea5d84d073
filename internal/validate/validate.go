package validate

import (
	"regexp"
	"unicode/utf8"

	"AOSocial/internal/domain"
	"AOSocial/internal/scanner"
)

const (
	MaxMedia       = 3
	MaxContentLen  = 1000
	MinNicknameLen = 2
	MaxNicknameLen = 32
)

// User-facing rejection reasons.
const (
	ReasonTooMuchMedia     = "Contains up to 3 media files."
	ReasonEmpty            = "Post is empty."
	ReasonTooLong          = "Content can be up to 1000 characters long."
	ReasonNicknameTooShort = "Nickname must be at least 2 characters."
	ReasonNicknameTooLong  = "Nickname can be up to 32 characters."
)

var digitsExpr = regexp.MustCompile(`^[0-9]*$`)

// Content checks post limits. The media limit is checked first and wins over
// every other rule.
func Content(content string, charCount int) domain.ValidationResult {
	media := scanner.CountMedia(content).Total()
	if media > MaxMedia {
		return domain.Rejected(ReasonTooMuchMedia)
	}

	switch {
	case charCount == 0 && media == 0:
		return domain.Rejected(ReasonEmpty)
	case charCount > MaxContentLen:
		return domain.Rejected(ReasonTooLong)
	}
	return domain.Accepted
}

// Nickname checks the length bounds of a profile nickname, counted in characters.
func Nickname(name string) domain.ValidationResult {
	n := utf8.RuneCountInString(name)
	if n > MaxNicknameLen {
		return domain.Rejected(ReasonNicknameTooLong)
	}
	if n < MinNicknameLen {
		return domain.Rejected(ReasonNicknameTooShort)
	}
	return domain.Accepted
}

// Number reports whether s consists of ASCII digits only. The empty string passes.
func Number(s string) bool {
	return digitsExpr.MatchString(s)
}
