package scanner

import (
	"regexp"
	"strings"

	"AOSocial/internal/domain"
)

var (
	// urlExpr matches bare http(s) links: host, optional query-ish tail, optional path.
	urlExpr     = regexp.MustCompile(`https?://([\w-]+\S)+[\w-]+([\w?%#&=-]*)?(/[\w./?%#&=-]*)?`)
	mentionExpr = regexp.MustCompile(`@\w+(?:-\w+)*`)
	hashTagExpr = regexp.MustCompile(`#\w+(?:-\w+)*`)
)

// Result collects everything detected in a piece of content.
type Result struct {
	Mentions []domain.Annotation
	HashTags []domain.Annotation
	URLs     []domain.Annotation
	Media    domain.MediaCount
}

// Scan detects mentions, hashtags, unlinked URLs and media tags in content.
func Scan(content string) Result {
	return Result{
		Mentions: Mentions(content),
		HashTags: HashTags(content),
		URLs:     URLs(content, ExtractLinked(content)),
		Media:    CountMedia(content),
	}
}

// Mentions returns every @name occurrence.
func Mentions(content string) []domain.Annotation {
	return find(mentionExpr, content, domain.KindMention, nil)
}

// HashTags returns every #name occurrence.
func HashTags(content string) []domain.Annotation {
	return find(hashTagExpr, content, domain.KindHashTag, nil)
}

// URLs returns bare URLs whose exact text is not in linked. Matches inside tag
// markup are never reported.
func URLs(content string, linked LinkedSet) []domain.Annotation {
	return find(urlExpr, content, domain.KindURL, func(loc []int) bool {
		return !insideTag(content, loc[0]) && !linked.Contains(content[loc[0]:loc[1]])
	})
}

// ReplaceURLs rewrites every URL reported by URLs with wrap(url) and leaves
// the rest of content untouched.
func ReplaceURLs(content string, linked LinkedSet, wrap func(string) string) string {
	found := URLs(content, linked)
	if len(found) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, a := range found {
		b.WriteString(content[last:a.Start])
		b.WriteString(wrap(a.Text))
		last = a.End
	}
	b.WriteString(content[last:])
	return b.String()
}

// ReplaceMentions rewrites every mention with wrap(name), name excluding the leading @.
func ReplaceMentions(content string, wrap func(name string) string) string {
	return mentionExpr.ReplaceAllStringFunc(content, func(match string) string {
		return wrap(match[1:])
	})
}

// ReplaceHashTags rewrites every hashtag with wrap(name), name excluding the leading #.
func ReplaceHashTags(content string, wrap func(name string) string) string {
	return hashTagExpr.ReplaceAllStringFunc(content, func(match string) string {
		return wrap(match[1:])
	})
}

func find(expr *regexp.Regexp, content string, kind domain.AnnotationKind, keep func(loc []int) bool) []domain.Annotation {
	var found []domain.Annotation
	for _, loc := range expr.FindAllStringIndex(content, -1) {
		if keep != nil && !keep(loc) {
			continue
		}
		text := content[loc[0]:loc[1]]
		found = append(found, domain.Annotation{
			Start: loc[0],
			End:   loc[1],
			Kind:  kind,
			Text:  text,
		})
	}
	return found
}
