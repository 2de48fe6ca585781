package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ClientService is the interface that wraps methods for client business logic
type ClientService interface {
	// Create validates and stores a new client
	Create(ctx context.Context, req *models.CreateClientRequest) (int, error)
	// ListAll retrieves every client
	ListAll(ctx context.Context) ([]models.Client, error)
	// Delete removes a client by its ID
	Delete(ctx context.Context, id int) error
}

// ClientHandler handles client requests
type ClientHandler struct {
	BaseHandler
	clientService ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		clientService: clientService,
	}
}

// RegisterRoutes registers client handler routes
func (h *ClientHandler) RegisterRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	clientID, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.RespondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.Logger.Error("failed to create client", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "client created successfully",
		"id":      clientID,
	})
}

// GetAll handles GET /api/clients
func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to list clients", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, clients)
}

// Delete handles DELETE /api/clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			h.RespondError(w, http.StatusNotFound, "client not found")
			return
		}
		h.Logger.Error("failed to delete client", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "client deleted successfully"})
}
