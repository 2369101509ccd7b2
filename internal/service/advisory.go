package service

import (
	"context"
	"errors"

	"pcst_ai/internal/llm"
	"pcst_ai/internal/models"
	"pcst_ai/internal/parser"
	"pcst_ai/internal/prompts"
)

var (
	ErrMissingLogs       = errors.New("control room logs are required")
	ErrMissingTask       = errors.New("task description is required")
	ErrMissingConditions = errors.New("all process parameters are required")
)

type AdvisoryService struct {
	client llm.Client
}

func NewAdvisoryService(client llm.Client) *AdvisoryService {
	return &AdvisoryService{client: client}
}

func (s *AdvisoryService) AnalyzeIncident(ctx context.Context, logs string) (models.IncidentDetails, error) {
	if logs == "" {
		return models.IncidentDetails{}, ErrMissingLogs
	}
	text, err := s.client.Generate(ctx, prompts.BuildIncidentPrompt(logs))
	if err != nil {
		return models.IncidentDetails{}, err
	}
	return parser.ParseIncident(text), nil
}

func (s *AdvisoryService) AssessSafety(ctx context.Context, task string) (models.SafetyDetails, error) {
	if task == "" {
		return models.SafetyDetails{}, ErrMissingTask
	}
	text, err := s.client.Generate(ctx, prompts.BuildSafetyPrompt(task))
	if err != nil {
		return models.SafetyDetails{}, err
	}
	return parser.ParseSafety(text), nil
}

func (s *AdvisoryService) AssessCorrosion(ctx context.Context, req models.CorrosionRequest) (models.CorrosionDetails, error) {
	if req.Material == "" || req.Temperature == nil || req.PH == nil || req.Pressure == nil || req.Velocity == nil {
		return models.CorrosionDetails{}, ErrMissingConditions
	}
	text, err := s.client.Generate(ctx, prompts.BuildCorrosionPrompt(prompts.CorrosionParams{
		Material:    req.Material,
		Temperature: *req.Temperature,
		PH:          *req.PH,
		Pressure:    *req.Pressure,
		Velocity:    *req.Velocity,
	}))
	if err != nil {
		return models.CorrosionDetails{}, err
	}
	return parser.ParseCorrosion(text), nil
}
