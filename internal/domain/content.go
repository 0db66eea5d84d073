package domain

// RichContent is a markup fragment produced by the post editor.
type RichContent = string

// Timestamp counts seconds since the Unix epoch.
type Timestamp int64

// AnnotationKind classifies a located substring inside RichContent.
type AnnotationKind string

const (
	KindMention AnnotationKind = "mention"
	KindHashTag AnnotationKind = "hashtag"
	KindURL     AnnotationKind = "url"
)

// Annotation is a detected mention, hashtag or bare URL. Start and End are byte
// offsets into the scanned content; End is exclusive.
type Annotation struct {
	Start int
	End   int
	Kind  AnnotationKind
	Text  string
}

// MediaKind enumerates the media tags counted toward post limits.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaFrame MediaKind = "iframe"
	MediaAudio MediaKind = "audio"
)

// MediaKinds lists every counted kind in display order.
var MediaKinds = []MediaKind{MediaImage, MediaFrame, MediaAudio}

// MediaCount holds per-kind media tag counts. A missing key reads as zero.
type MediaCount map[MediaKind]int

// Of returns the count for a single kind.
func (m MediaCount) Of(kind MediaKind) int {
	return m[kind]
}

// Total sums all kinds.
func (m MediaCount) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
