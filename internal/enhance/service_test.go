package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-annex/internal/intake"
	"resume-annex/internal/llm"
)

type stubGenerator struct {
	reply string
	err   error
	calls [][]llm.Message
}

func (s *stubGenerator) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestRewriteSendsPersonaAndBullet(t *testing.T) {
	gen := &stubGenerator{reply: "Drove a 40% reduction in page load time across 3 products."}
	svc := NewService(gen)

	out, err := svc.Rewrite(context.Background(), "made the site faster")
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if out != "Drove a 40% reduction in page load time across 3 products." {
		t.Fatalf("unexpected output %q", out)
	}

	msgs := gen.calls[0]
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if msgs[0].Role != intake.RoleSystem || !strings.Contains(msgs[0].Content, "Executive Resume Writer") {
		t.Fatalf("missing rewriter persona: %+v", msgs[0])
	}
	if !strings.Contains(msgs[1].Content, "made the site faster") {
		t.Fatalf("user message missing the bullet: %q", msgs[1].Content)
	}
}

func TestRewriteStripsFencesAndWhitespace(t *testing.T) {
	gen := &stubGenerator{reply: "```\nShipped the thing.\n```\n"}
	svc := NewService(gen)

	out, err := svc.Rewrite(context.Background(), "shipped")
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if out != "Shipped the thing." {
		t.Fatalf("expected fences stripped, got %q", out)
	}
}

func TestRewriteWrapsGeneratorError(t *testing.T) {
	svc := NewService(&stubGenerator{err: llm.ErrUnavailable})

	_, err := svc.Rewrite(context.Background(), "anything")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func newTestRouter(t *testing.T, gen llm.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(gen)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postOptimize(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestOptimizeEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubGenerator{reply: "Cut onboarding time in half."})

	resp := postOptimize(t, r, gin.H{"bulletPoint": "helped new hires"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Enhanced string `json:"enhanced"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Enhanced != "Cut onboarding time in half." {
		t.Fatalf("unexpected enhanced text %q", body.Enhanced)
	}
}

func TestOptimizeRejectsEmptyBullet(t *testing.T) {
	r := newTestRouter(t, &stubGenerator{})

	for _, payload := range []any{gin.H{}, gin.H{"bulletPoint": "   "}} {
		resp := postOptimize(t, r, payload)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.Code)
		}
	}
}

func TestOptimizeUnconfiguredIs503(t *testing.T) {
	r := newTestRouter(t, llm.Unconfigured{})

	resp := postOptimize(t, r, gin.H{"bulletPoint": "did stuff"})
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
