package parser

import (
	"regexp"

	"pcst_ai/internal/models"
)

const (
	severityHigh   = "High"
	severityMedium = "Medium"
	severityLow    = "Low"
)

// ParseSafety extracts the overall hazard level, hazards, mitigations and
// standards from a job safety assessment.
func ParseSafety(text string) models.SafetyDetails {
	out := models.SafetyDetails{
		HazardLevel: LevelMedium,
		Hazards:     []models.Hazard{},
		Mitigations: []string{},
		Standards:   []string{},
	}

	const (
		none = iota
		level
		hazards
		mitigations
		standards
	)
	current := none

	eachLine(text, func(line string) {
		switch {
		case containsAnyFold(line, "HAZARD LEVEL:", "OVERALL RISK:"):
			current = level
			if v := valueAfterColon(line); v != "" {
				out.HazardLevel = normalizeLevel(v)
				current = none
			}
			return
		case containsFold(line, "HAZARDS:"):
			current = hazards
			return
		case containsFold(line, "MITIGATIONS:"):
			current = mitigations
			return
		case containsFold(line, "STANDARDS:"):
			current = standards
			return
		}

		if current == level {
			out.HazardLevel = normalizeLevel(line)
			current = none
			return
		}
		if !isListItem(line) {
			return
		}
		switch current {
		case hazards:
			out.Hazards = append(out.Hazards, hazardFromLine(line))
		case mitigations:
			out.Mitigations = append(out.Mitigations, line)
		case standards:
			out.Standards = append(out.Standards, line)
		}
	})

	return out
}

var (
	highSeverityRe = regexp.MustCompile(`(?i)\b(high|critical|severe)\b`)
	lowSeverityRe  = regexp.MustCompile(`(?i)\b(low|minor)\b`)
)

// hazardFromLine grades a hazard by its wording. Probability is not stated
// by the model and stays Medium.
func hazardFromLine(line string) models.Hazard {
	h := models.Hazard{Name: line, Severity: severityMedium, Probability: severityMedium}
	switch {
	case highSeverityRe.MatchString(line):
		h.Severity = severityHigh
	case lowSeverityRe.MatchString(line):
		h.Severity = severityLow
	}
	return h
}
