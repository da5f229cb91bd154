package types

type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// Testimonial is one tile of the home page gallery. MediaSrc is either an
// absolute URL or a media key resolved at render time.
type Testimonial struct {
	Kind         MediaKind
	Name         string
	Role         string
	Quote        string
	MediaSrc     string
	FullVideoURL string
	Alt          string
}

type Card struct {
	Icon        string
	Title       string
	Description string
}

type FAQItem struct {
	Question string
	Answer   string
}

type Pricing struct {
	Price    string
	Note     string
	Seats    string
	Terms    string
	CTALabel string
}
