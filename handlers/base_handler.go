package handlers

import (
	"net/http"

	apperrors "privatemsg/pkg/errors"
	"privatemsg/pkg/logger"
	"privatemsg/pkg/template"
)

var log = logger.Named("handlers")

type BaseHandler struct {
	renderer *template.Renderer
}

func (h *BaseHandler) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (h *BaseHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithField("path", r.URL.Path).Warnf("Request failed: %v", err)
	apperrors.HandleError(w, err)
}
