package types

type BaseDataSetter interface {
	SetBaseData(path string, year int)
}

type BasePageData struct {
	Title string
	Path  string
	Year  int
	// RefreshSec reloads the page after that many seconds when non-zero.
	RefreshSec uint
}

func (d *BasePageData) SetBaseData(path string, year int) {
	d.Path = path
	d.Year = year
}

type TestimonialCard struct {
	Testimonial
	MediaURL string
}

type HomePageData struct {
	BasePageData
	Testimonials []TestimonialCard
}

type FAQPanel struct {
	FAQItem
	Index int
	Open  bool
}

type ApplyModalData struct {
	Open         bool
	Form         ApplicationRequest
	Status       SubmissionStatus
	CanSubmit    bool
	ContactEmail string
}

func (m ApplyModalData) Sending() bool { return m.Status == SubmissionSending }
func (m ApplyModalData) Sent() bool    { return m.Status == SubmissionSent }
func (m ApplyModalData) Failed() bool  { return m.Status == SubmissionError }

type InnerCirclePageData struct {
	BasePageData
	IncludeCards []Card
	SprintSteps  []Card
	Outcomes     []string
	Pricing      Pricing
	FAQ          []FAQPanel
	Modal        ApplyModalData
}
