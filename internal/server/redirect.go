package server

import "net/http"

func (s *Service) redirectToInnerCircle(w http.ResponseWriter, r *http.Request, fragment string) {
	target := "/inner-circle"
	if fragment != "" {
		target += "#" + fragment
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
