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

// CampaignService is the interface that wraps methods for campaign business logic
type CampaignService interface {
	// Schedule creates a pending campaign owned by userID
	//
	// "ctx" parameter is used to specify the context.
	// "userID" parameter identifies the owner of the campaign.
	// "req" parameter is used to specify the campaign scheduling request.
	//
	// If validation fails, a *ValidationError will be returned.
	Schedule(ctx context.Context, userID int, req *models.ScheduleCampaignRequest) (int, error)
	// GetAll retrieves a paginated list of campaigns for a user
	GetAll(ctx context.Context, page, count, userID int) ([]models.CampaignListItem, error)
}

// DispatchService is the interface that wraps immediate dispatch
type DispatchService interface {
	// DispatchNow sends a template to every client without touching campaign state
	//
	// If the template does not exist, repositories.ErrTemplateNotFound will be returned.
	DispatchNow(ctx context.Context, templateID int) (*models.DispatchReport, error)
}

// CampaignHandler handles campaign scheduling and dispatch requests
type CampaignHandler struct {
	BaseHandler
	campaignService CampaignService
	dispatchService DispatchService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService CampaignService, dispatchService DispatchService, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		campaignService: campaignService,
		dispatchService: dispatchService,
	}
}

// RegisterRoutes registers campaign handler routes
func (h *CampaignHandler) RegisterRoutes(r chi.Router) {
	r.Route("/campaigns", func(r chi.Router) {
		r.Post("/", h.Schedule)
		r.Get("/", h.GetAll)
		r.Post("/send-now", h.SendNow)
	})
}

// Schedule handles POST /api/campaigns
func (h *CampaignHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.ScheduleCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaignID, err := h.campaignService.Schedule(r.Context(), userID, &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.RespondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.Logger.Error("failed to schedule campaign", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "campaign scheduled successfully",
		"id":      campaignID,
	})
}

// GetAll handles GET /api/campaigns
func (h *CampaignHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	campaigns, err := h.campaignService.GetAll(r.Context(), page, count, userID)
	if err != nil {
		h.Logger.Error("failed to get campaigns", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, campaigns)
}

// SendNow handles POST /api/campaigns/send-now
func (h *CampaignHandler) SendNow(w http.ResponseWriter, r *http.Request) {
	var req models.DispatchNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TemplateID <= 0 {
		h.RespondError(w, http.StatusBadRequest, "template_id is required")
		return
	}

	report, err := h.dispatchService.DispatchNow(r.Context(), req.TemplateID)
	if err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			h.RespondError(w, http.StatusNotFound, "email template not found")
			return
		}
		h.Logger.Error("failed to dispatch template", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.RespondJSON(w, http.StatusOK, report)
}
