package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hersalon/internal/disclosure"
	"hersalon/internal/leadform"
	"hersalon/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

const applyFragment = "apply"

func (s *Service) handleOpenApply(w http.ResponseWriter, r *http.Request) {
	st := s.readVisitor(r)

	if _, ok := s.applyForm(&st); !ok {
		id, _ := s.forms.Open()
		st.FormSession = id
		st.Modal.Open()

		s.logger.WithFields(logrus.Fields{
			"form_session": id,
			"request_id":   requestIDFromContext(r.Context()),
		}).Debug("application form opened")
	}

	if err := s.writeVisitor(w, st); err != nil {
		s.logger.WithError(err).Error("failed to write visitor cookie")
		s.internalServerError(w)
		return
	}

	s.redirectToInnerCircle(w, r, applyFragment)
}

func (s *Service) handleCloseApply(w http.ResponseWriter, r *http.Request) {
	st := s.readVisitor(r)
	target := disclosure.ParseTarget(r.FormValue("target"))

	if !st.Modal.Click(target) {
		fragment := ""
		if st.Modal.IsOpen {
			fragment = applyFragment
		}
		s.redirectToInnerCircle(w, r, fragment)
		return
	}

	if st.FormSession != "" {
		s.forms.Discard(st.FormSession)
		st.FormSession = ""
	}

	if err := s.writeVisitor(w, st); err != nil {
		s.logger.WithError(err).Error("failed to write visitor cookie")
		s.internalServerError(w)
		return
	}

	s.redirectToInnerCircle(w, r, "")
}

func (s *Service) handlePostApply(w http.ResponseWriter, r *http.Request) {
	st := s.readVisitor(r)

	ctrl, ok := s.applyForm(&st)
	if !ok {
		// The form is gone; show the page without it.
		if err := s.writeVisitor(w, st); err != nil {
			s.logger.WithError(err).Error("failed to write visitor cookie")
		}
		s.redirectToInnerCircle(w, r, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Warn("failed to parse application form")
		s.redirectToInnerCircle(w, r, applyFragment)
		return
	}

	var input types.ApplyFormInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.logger.WithError(err).Warn("failed to decode application form")
		s.redirectToInnerCircle(w, r, applyFragment)
		return
	}

	ctrl.UpdateField(leadform.FieldFullName, input.FullName)
	ctrl.UpdateField(leadform.FieldPhone, input.Phone)
	ctrl.UpdateField(leadform.FieldEmail, input.Email)
	ctrl.SetCanAttend(input.CanAttend)

	if input.Action == "submit" {
		s.startSubmission(r, st.FormSession, ctrl)
	}

	s.redirectToInnerCircle(w, r, applyFragment)
}

func (s *Service) startSubmission(r *http.Request, session string, ctrl *leadform.Controller) {
	log := s.logger.WithFields(logrus.Fields{
		"form_session": session,
		"request_id":   requestIDFromContext(r.Context()),
	})

	started := time.Now()
	ok := ctrl.Go(func(err error) {
		done := log.WithField("duration_ms", time.Since(started).Milliseconds())

		switch {
		case err == nil:
			done.Info("application submitted")
		case errors.Is(err, leadform.ErrRejected):
			done.WithError(err).Warn("application rejected by endpoint")
		default:
			done.WithError(err).Error("application submission failed")
		}
	})

	if !ok {
		log.WithField("status", ctrl.Status()).Debug("application not submittable")
	}
}

func (s *Service) handleToggleFAQ(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(flow.Param(r.Context(), "index"))
	if err != nil || index < 0 || index >= len(faqItems()) {
		http.NotFound(w, r)
		return
	}

	st := s.readVisitor(r)
	st.FAQ.Toggle(index)

	if err := s.writeVisitor(w, st); err != nil {
		s.logger.WithError(err).Error("failed to write visitor cookie")
		s.internalServerError(w)
		return
	}

	s.redirectToInnerCircle(w, r, "faq-"+strconv.Itoa(index))
}
