package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// linkAttrs maps each tag that can already carry a link to the attribute holding it.
var linkAttrs = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
	{"audio[src]", "src"},
	{"iframe[src]", "src"},
}

// LinkedSet holds href/src values found in anchor and media tags.
type LinkedSet map[string]struct{}

// Contains reports whether url exactly equals one of the extracted values.
func (s LinkedSet) Contains(url string) bool {
	_, ok := s[url]
	return ok
}

func (s LinkedSet) add(value string) {
	if value == "" {
		return
	}
	s[value] = struct{}{}
	// raw markup keeps entities such as &amp;, which is what the URL pattern sees
	s[EscapeAttr(value)] = struct{}{}
}

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

// EscapeAttr escapes url for a double-quoted attribute. Only & and " are
// replaced, with named entities, so the URL pattern reads the escaped form
// back as a single match.
func EscapeAttr(url string) string {
	return attrEscaper.Replace(url)
}

// insideTag reports whether pos falls between a '<' and its closing '>'.
func insideTag(content string, pos int) bool {
	return strings.LastIndexByte(content[:pos], '<') > strings.LastIndexByte(content[:pos], '>')
}

// ExtractLinked parses content once and collects the link targets of a, img,
// audio and iframe tags.
func ExtractLinked(content string) LinkedSet {
	set := LinkedSet{}
	doc, err := parse(content)
	if err != nil {
		return set
	}

	for _, la := range linkAttrs {
		doc.Find(la.selector).Each(func(_ int, sel *goquery.Selection) {
			if v, ok := sel.Attr(la.attr); ok {
				set.add(strings.TrimSpace(v))
			}
		})
	}
	return set
}

// TextLength counts the visible characters of content, markup excluded.
func TextLength(content string) int {
	doc, err := parse(content)
	if err != nil {
		return utf8.RuneCountInString(content)
	}
	return utf8.RuneCountInString(strings.TrimSpace(doc.Text()))
}

// FirstImage returns the src of the first image tag, or "" when there is none.
func FirstImage(content string) string {
	doc, err := parse(content)
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

func parse(content string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(content))
}
