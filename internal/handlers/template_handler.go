package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/auth"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EmailTemplateService is the interface that wraps methods for email template business logic
type EmailTemplateService interface {
	// Create validates and stores a new email template for userID
	Create(ctx context.Context, userID int, req *models.CreateEmailTemplateRequest) (int, error)
	// GetByID retrieves an email template by its ID
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
	// GetAllByUser retrieves all templates owned by userID
	GetAllByUser(ctx context.Context, userID int) ([]models.EmailTemplateListItem, error)
	// Delete removes an email template by its ID
	Delete(ctx context.Context, id int) error
}

// TemplateHandler handles email template requests
type TemplateHandler struct {
	BaseHandler
	templateService EmailTemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService EmailTemplateService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		templateService: templateService,
	}
}

// RegisterRoutes registers template handler routes
func (h *TemplateHandler) RegisterRoutes(r chi.Router) {
	r.Route("/templates", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /api/templates
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.CreateEmailTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	templateID, err := h.templateService.Create(r.Context(), userID, &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.RespondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.Logger.Error("failed to create email template", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "email template created successfully",
		"id":      templateID,
	})
}

// GetAll handles GET /api/templates
func (h *TemplateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	templates, err := h.templateService.GetAllByUser(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get email templates", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, templates)
}

// GetByID handles GET /api/templates/{id}
func (h *TemplateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	template, err := h.templateService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			h.RespondError(w, http.StatusNotFound, "email template not found")
			return
		}
		h.Logger.Error("failed to get email template", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, template)
}

// Delete handles DELETE /api/templates/{id}
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			h.RespondError(w, http.StatusNotFound, "email template not found")
			return
		}
		h.Logger.Error("failed to delete email template", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "email template deleted successfully"})
}
