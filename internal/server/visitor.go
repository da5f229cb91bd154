package server

import (
	"net/http"

	"hersalon/internal"
	"hersalon/internal/disclosure"
	"hersalon/internal/leadform"
)

// visitorState is the per-browser UI state carried in a signed cookie. The
// form itself lives in the form store; the cookie only names it.
type visitorState struct {
	Modal       disclosure.Modal     `json:"modal"`
	FAQ         disclosure.Accordion `json:"faq"`
	FormSession string               `json:"form,omitempty"`
}

func (s *Service) readVisitor(r *http.Request) visitorState {
	var st visitorState

	c, err := r.Cookie(internal.COOKIE_VISITOR_STATE_NAME)
	if err != nil {
		return st
	}

	if err := s.cookie.Decode(internal.COOKIE_VISITOR_STATE_NAME, c.Value, &st); err != nil {
		s.logger.WithError(err).Debug("discarding unreadable visitor cookie")
		return visitorState{}
	}

	return st
}

func (s *Service) writeVisitor(w http.ResponseWriter, st visitorState) error {
	encoded, err := s.cookie.Encode(internal.COOKIE_VISITOR_STATE_NAME, st)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_VISITOR_STATE_NAME,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// applyForm returns the controller behind an open modal. A modal whose form
// has gone away (expired, or the server restarted) is closed in st.
func (s *Service) applyForm(st *visitorState) (*leadform.Controller, bool) {
	if !st.Modal.IsOpen || st.FormSession == "" {
		return nil, false
	}

	ctrl, ok := s.forms.Get(st.FormSession)
	if !ok {
		st.Modal.Close()
		st.FormSession = ""
		return nil, false
	}

	return ctrl, true
}
