package service

import (
	"context"

	"pcst_ai/internal/llm"
	"pcst_ai/internal/models"
)

// Catalog exposes the fixed equipment list offered to clients.
type Catalog interface {
	List() []string
}

// Troubleshooting runs compose -> generate -> segment for one query.
type Troubleshooting interface {
	Troubleshoot(ctx context.Context, req models.SearchRequest) (models.ResponseSections, error)
}

// Advisory runs the incident, safety and corrosion assessments.
type Advisory interface {
	AnalyzeIncident(ctx context.Context, logs string) (models.IncidentDetails, error)
	AssessSafety(ctx context.Context, task string) (models.SafetyDetails, error)
	AssessCorrosion(ctx context.Context, req models.CorrosionRequest) (models.CorrosionDetails, error)
}

// Service aggregates all sub-services.
type Service struct {
	Catalog
	Troubleshooting
	Advisory
}

// NewService wires the completion client into the concrete services.
func NewService(client llm.Client) *Service {
	return &Service{
		Catalog:         NewCatalogService(),
		Troubleshooting: NewTroubleshootingService(client),
		Advisory:        NewAdvisoryService(client),
	}
}
