package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"privatemsg/assets"
	apperrors "privatemsg/pkg/errors"
	"privatemsg/pkg/template"
	"privatemsg/pkg/views"
)

const maxCardBody = 1 << 20

type MessageCardHandler struct {
	BaseHandler
	registry  assets.Registry
	staticURL string
}

// NewMessageCardHandler serves rendered cards. staticURL is the prefix the
// registered stylesheet paths are served under.
func NewMessageCardHandler(r *template.Renderer, registry assets.Registry, staticURL string) *MessageCardHandler {
	return &MessageCardHandler{
		BaseHandler: BaseHandler{renderer: r},
		registry:    registry,
		staticURL:   staticURL,
	}
}

// RenderCard renders the posted card. htmx requests get the bare fragment,
// everything else a page with the registered stylesheets linked in the head.
func (h *MessageCardHandler) RenderCard(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodPost) {
		return
	}
	ctx := r.Context()

	var req views.CardRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCardBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.renderError(w, r, apperrors.Wrap(apperrors.ErrValidation, "invalid card request", err))
		return
	}

	variant := req.Variant
	if variant == "" {
		variant = template.DefaultVariant
	}

	fragment, err := h.renderer.RenderVariant(ctx, variant, views.ToMessageViewModel(req))
	if err != nil && !apperrors.IsResourceRegistration(err) {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if r.Header.Get("HX-Request") == "true" {
		if _, err := io.WriteString(w, string(fragment)); err != nil {
			log.Printf("Error writing fragment: %v", err)
		}
		return
	}

	paths, err := h.registry.Paths(ctx)
	if err != nil {
		log.Warnf("Could not list registered stylesheets: %v", err)
	}
	links, err := assets.StylesheetLinks(paths, h.staticURL)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := template.Page{
		Title:       "Private message",
		Stylesheets: links,
		Body:        fragment,
	}
	if err := h.renderer.RenderPage(w, page); err != nil {
		log.Errorf("❌ Error rendering page: %v", err)
	}
}

// ListAssets reports the registered stylesheets in registration order.
func (h *MessageCardHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	if !h.requireMethod(w, r, http.MethodGet) {
		return
	}

	paths, err := h.registry.Paths(r.Context())
	if err != nil {
		h.renderError(w, r, apperrors.Wrap(apperrors.ErrResourceRegistration, "asset registry unavailable", err))
		return
	}
	if paths == nil {
		paths = []string{}
	}
	apperrors.WriteJSON(w, http.StatusOK, views.AssetList{Stylesheets: paths})
}
