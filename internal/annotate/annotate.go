package annotate

import (
	"fmt"
	"html"

	"AOSocial/internal/scanner"
)

const (
	slugClass   = "activity-page-slug-link"
	profilePath = "/profile/"
	planPath    = "/plan/"
)

// Annotate linkifies mentions, then hashtags, then bare URLs. Later passes see
// the output of earlier ones.
func Annotate(content string) string {
	content = LinkifyMentions(content)
	content = LinkifyHashTags(content)
	return LinkifyURLs(content)
}

// LinkifyMentions turns @name into a link to the profile page of name.
func LinkifyMentions(content string) string {
	return scanner.ReplaceMentions(content, func(name string) string {
		return slugAnchor(profilePath+name, "@"+name)
	})
}

// LinkifyHashTags turns #name into a link to the plan page of name.
func LinkifyHashTags(content string) string {
	return scanner.ReplaceHashTags(content, func(name string) string {
		return slugAnchor(planPath+name, "#"+name)
	})
}

// LinkifyURLs wraps URLs that are not already the target of an anchor or media
// tag in an anchor opening a new browsing context.
func LinkifyURLs(content string) string {
	linked := scanner.ExtractLinked(content)
	return scanner.ReplaceURLs(content, linked, func(url string) string {
		return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, quoteAttr(url), url)
	})
}

func slugAnchor(href, text string) string {
	return fmt.Sprintf(`<a class="%s" href="%s">%s</a>`, slugClass, href, text)
}

// quoteAttr escapes url for a double-quoted attribute unless it already carries entities.
func quoteAttr(url string) string {
	if html.UnescapeString(url) != url {
		return url
	}
	return scanner.EscapeAttr(url)
}
