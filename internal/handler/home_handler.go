package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"cupcake-api/internal/model"

	"github.com/rs/zerolog"
)

// HomeHandler renders the static home page.
type HomeHandler struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

// NewHomeHandler creates a home handler rendering the "home.html" template.
func NewHomeHandler(tmpl *template.Template, logger zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		tmpl:   tmpl,
		logger: logger.With().Str("handler", "home").Logger(),
	}
}

// Home handles GET / requests.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "home.html", nil); err != nil {
		h.logger.Error().Err(err).Msg("failed to render home page")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to render page", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
