package usecase

import (
	"AOSocial/internal/annotate"
	"AOSocial/internal/scanner"
	"AOSocial/internal/validate"
)

// PreparedPost is validated, linkified content ready for publishing.
type PreparedPost struct {
	Content    string
	CharCount  int
	FirstImage string
}

// PreparePost validates content and returns its annotated form. A negative
// charCount is replaced by the visible text length of content.
func PreparePost(content string, charCount int) (PreparedPost, error) {
	if charCount < 0 {
		charCount = scanner.TextLength(content)
	}
	if err := validate.Content(content, charCount).Err(); err != nil {
		return PreparedPost{}, err
	}

	return PreparedPost{
		Content:    annotate.Annotate(content),
		CharCount:  charCount,
		FirstImage: scanner.FirstImage(content),
	}, nil
}
