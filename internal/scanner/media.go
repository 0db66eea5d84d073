package scanner

import (
	"regexp"

	"AOSocial/internal/domain"
)

var mediaExprs = map[domain.MediaKind]*regexp.Regexp{
	domain.MediaImage: regexp.MustCompile(`(?i)<img`),
	domain.MediaFrame: regexp.MustCompile(`(?i)<iframe`),
	domain.MediaAudio: regexp.MustCompile(`(?i)<audio`),
}

// CountMedia counts opening image, iframe and audio tags. Matching is textual.
func CountMedia(content string) domain.MediaCount {
	counts := make(domain.MediaCount, len(mediaExprs))
	for kind, expr := range mediaExprs {
		counts[kind] = len(expr.FindAllStringIndex(content, -1))
	}
	return counts
}
