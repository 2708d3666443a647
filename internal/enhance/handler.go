package enhance

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-annex/internal/llm"
	"resume-annex/internal/shared/server/respond"
)

// Handler exposes the bullet rewrite endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches enhance routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
}

type optimizeRequest struct {
	BulletPoint string `json:"bulletPoint"`
}

type optimizeResponse struct {
	Enhanced string `json:"enhanced"`
}

func (h *Handler) optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.BulletPoint) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "bulletPoint is required", nil)
		return
	}

	enhanced, err := h.Svc.Rewrite(c.Request.Context(), req.BulletPoint)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "not_configured",
				"AI features are not configured on this server.", nil)
		case errors.Is(err, llm.ErrUnavailable):
			respond.Error(c, http.StatusBadGateway, "service_unavailable",
				"AI service unavailable. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "rewrite failed", nil)
		}
		return
	}

	respond.OK(c, optimizeResponse{Enhanced: enhanced})
}
