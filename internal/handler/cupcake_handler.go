package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cupcake-api/internal/model"
	"cupcake-api/internal/service"

	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request payloads.
const maxBodyBytes = 1 << 20

// CupcakeHandler handles cupcake-related HTTP requests.
type CupcakeHandler struct {
	service service.CupcakeService
	logger  zerolog.Logger
}

// NewCupcakeHandler creates a new cupcake handler.
func NewCupcakeHandler(service service.CupcakeService, logger zerolog.Logger) *CupcakeHandler {
	return &CupcakeHandler{
		service: service,
		logger:  logger.With().Str("handler", "cupcake").Logger(),
	}
}

// List handles GET /api/cupcakes requests.
func (h *CupcakeHandler) List(w http.ResponseWriter, r *http.Request) {
	cupcakes, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve cupcakes", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.CupcakeListResponse{Cupcakes: cupcakes}, h.logger)
}

// Get handles GET /api/cupcakes/{id} requests.
func (h *CupcakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	cupcake, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve cupcake", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.CupcakeResponse{Cupcake: *cupcake}, h.logger)
}

// Create handles POST /api/cupcakes requests.
func (h *CupcakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewCupcake
	if !h.decode(w, r, &req) {
		return
	}

	cupcake, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to create cupcake", h.logger)
		return
	}

	writeJSON(w, r, http.StatusCreated, model.CupcakeResponse{Cupcake: *cupcake}, h.logger)
}

// Update handles PATCH /api/cupcakes/{id} requests.
func (h *CupcakeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	var patch model.CupcakePatch
	if !h.decodeOptional(w, r, &patch) {
		return
	}

	cupcake, err := h.service.Update(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, r, err, "failed to update cupcake", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.CupcakeResponse{Cupcake: *cupcake}, h.logger)
}

// Delete handles DELETE /api/cupcakes/{id} requests.
func (h *CupcakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "failed to delete cupcake", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, model.MessageResponse{Message: "Deleted"}, h.logger)
}

func (h *CupcakeHandler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, model.ErrCodeCupcakeNotFound, model.ErrCupcakeNotFound.Message, h.logger)
}

// decode reads a JSON object body into dst. It writes a 400 and returns false
// when the body is missing or malformed.
func (h *CupcakeHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return false
	}
	return true
}

// decodeOptional is decode, except that an empty body leaves dst untouched.
func (h *CupcakeHandler) decodeOptional(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	h.logger.Debug().Err(err).Msg("invalid request body")
	writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
	return false
}
