package service

import (
	"context"
	"errors"

	"pcst_ai/internal/llm"
	"pcst_ai/internal/models"
	"pcst_ai/internal/parser"
	"pcst_ai/internal/prompts"
)

var ErrMissingQuery = errors.New("equipment and problem description are required")

type TroubleshootingService struct {
	client llm.Client
}

func NewTroubleshootingService(client llm.Client) *TroubleshootingService {
	return &TroubleshootingService{client: client}
}

// Troubleshoot composes the prompt, makes a single completion call and
// segments the reply. Completion failures come back as *llm.ServiceError.
func (s *TroubleshootingService) Troubleshoot(ctx context.Context, req models.SearchRequest) (models.ResponseSections, error) {
	if req.Equipment == "" || req.Problem == "" {
		return models.ResponseSections{}, ErrMissingQuery
	}

	prompt := prompts.BuildTroubleshootingPrompt(req.Equipment, req.Problem, req.ErrorCode)
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return models.ResponseSections{}, err
	}
	return parser.ParseTroubleshooting(text), nil
}
