package server

import (
	"bytes"
	"net/http"
	"time"

	"hersalon/pkg/types"
)

// renderTemplate executes into a buffer; nothing is written on error.
func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	if setter, ok := data.(types.BaseDataSetter); ok {
		setter.SetBaseData(r.URL.Path, time.Now().Year())
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
