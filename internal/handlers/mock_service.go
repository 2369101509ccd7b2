package handlers

import (
	"context"

	"pcst_ai/internal/models"
	"pcst_ai/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockLLM struct {
	reply      string
	err        error
	panicWith  any
	calls      int
	lastPrompt string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.reply, m.err
}

func (m *mockLLM) Close() error { return nil }

type mockTroubleshooting struct {
	resp    models.ResponseSections
	err     error
	lastReq models.SearchRequest
	calls   int
}

func (m *mockTroubleshooting) Troubleshoot(ctx context.Context, req models.SearchRequest) (models.ResponseSections, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, nil)
	return h.InitRoutes()
}

// newPipelineRouter wires the real services over a mocked completion client.
func newPipelineRouter(client *mockLLM) *gin.Engine {
	return newTestRouter(service.NewService(client))
}
