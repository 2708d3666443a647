package intake

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-annex/internal/extract"
	"resume-annex/internal/llm"
	"resume-annex/internal/shared/server/middleware"
	"resume-annex/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the intake HTTP surface to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches intake routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.POST("/chat", h.chat)
}

type uploadResponse struct {
	Reply          string `json:"reply"`
	InitialContext string `json:"initialContext"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := extract.TextFromBytes(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnreadable) {
			respond.Error(c, http.StatusBadRequest, "unreadable_file",
				"Could not read that file. Please paste your resume text directly instead.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process upload", nil)
		return
	}

	res := h.Svc.Begin(text)
	respond.OK(c, uploadResponse{
		Reply:          res.Reply,
		InitialContext: res.InitialContext,
	})
}

type chatRequest struct {
	Messages       []Turn `json:"messages"`
	InitialContext string `json:"initialContext"`
	QuestionCount  int    `json:"questionCount"`
	Plan           string `json:"plan"`
}

type chatActiveResponse struct {
	Reply         string `json:"reply"`
	QuestionCount int    `json:"questionCount"`
	IsComplete    bool   `json:"isComplete"`
}

type chatTerminalResponse struct {
	Reply           string `json:"reply"`
	GeneratedResume string `json:"generatedResume"`
	IsComplete      bool   `json:"isComplete"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Messages == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "messages is required", nil)
		return
	}
	if req.QuestionCount < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "questionCount must not be negative", nil)
		return
	}
	for _, m := range req.Messages {
		if m.Role != RoleSystem && m.Role != RoleUser && m.Role != RoleAssistant {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown message role", nil)
			return
		}
	}

	// The instruction context rides either in its own field or as a leading
	// system message; either way it is removed from the history proper.
	context := req.InitialContext
	history := req.Messages
	if context == "" && len(history) > 0 && history[0].Role == RoleSystem {
		context = history[0].Content
		history = history[1:]
	}

	plan := ParsePlan(req.Plan)
	c.Set("plan", string(plan))
	c.Set("questionCount", req.QuestionCount)

	out, err := h.Svc.Converse(c.Request.Context(), ConverseInput{
		Context:       context,
		History:       history,
		QuestionCount: req.QuestionCount,
		Plan:          plan,
		UserID:        middleware.UserIDFromContext(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "not_configured",
				"AI features are not configured on this server.", nil)
		case errors.Is(err, llm.ErrUnavailable), errors.Is(err, ErrSynthesis):
			respond.Error(c, http.StatusBadGateway, "service_unavailable",
				"AI service unavailable. Please try again.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "chat failed", nil)
		}
		return
	}

	c.Set("interviewState", string(out.State))

	if out.State == StateTerminal {
		respond.OK(c, chatTerminalResponse{
			Reply:           out.Reply,
			GeneratedResume: out.Artifact,
			IsComplete:      true,
		})
		return
	}

	respond.OK(c, chatActiveResponse{
		Reply:         out.Reply,
		QuestionCount: out.QuestionCount,
		IsComplete:    false,
	})
}
