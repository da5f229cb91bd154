package server

import (
	"net/http"

	"hersalon/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := testimonials()
	cards := make([]types.TestimonialCard, 0, len(items))
	for _, it := range items {
		mediaURL, err := s.media.Resolve(ctx, it.MediaSrc)
		if err != nil {
			s.logger.WithError(err).WithField("media", it.MediaSrc).Warn("failed to resolve testimonial media")
		}
		cards = append(cards, types.TestimonialCard{Testimonial: it, MediaURL: mediaURL})
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "HERSALON | Inner Circle"},
		Testimonials: cards,
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleInnerCircle(w http.ResponseWriter, r *http.Request) {
	st := s.readVisitor(r)
	wasOpen := st.Modal.IsOpen

	modal := types.ApplyModalData{
		Status:       types.SubmissionIdle,
		ContactEmail: s.config.ContactEmail,
	}

	if ctrl, ok := s.applyForm(&st); ok {
		snap := ctrl.Snapshot()
		modal.Open = true
		modal.Form = snap.Request
		modal.Status = snap.Status
		modal.CanSubmit = snap.CanSubmit
	}

	if wasOpen && !st.Modal.IsOpen {
		if err := s.writeVisitor(w, st); err != nil {
			s.logger.WithError(err).Error("failed to write visitor cookie")
		}
	}

	items := faqItems()
	panels := make([]types.FAQPanel, len(items))
	for i, it := range items {
		panels[i] = types.FAQPanel{FAQItem: it, Index: i, Open: st.FAQ.IsOpen(i)}
	}

	data := &types.InnerCirclePageData{
		BasePageData: types.BasePageData{Title: "HERSALON | Inner Circle"},
		IncludeCards: includeCards(),
		SprintSteps:  sprintSteps(),
		Outcomes:     outcomes(),
		Pricing:      pricing(),
		FAQ:          panels,
		Modal:        modal,
	}

	if modal.Sending() {
		data.RefreshSec = s.config.SendingRefreshSec
	}

	if err := s.renderTemplate(w, r, "page.inner-circle", data); err != nil {
		s.logger.WithError(err).Error("failed to render inner circle page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleUnknownPath sends every unmatched GET back to the home page.
func (s *Service) handleUnknownPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
