package parser

import (
	"strconv"
	"strings"

	"pcst_ai/internal/models"
)

const defaultIncidentConfidence = 0.75

// ParseIncident extracts root cause, risk, confidence, actions and timeline
// from a control room incident analysis. A scalar heading with no inline
// value takes the next line as its value.
func ParseIncident(text string) models.IncidentDetails {
	out := models.IncidentDetails{
		RiskLevel:  LevelMedium,
		Confidence: defaultIncidentConfidence,
		Actions:    []string{},
		Timeline:   []string{},
	}

	const (
		none = iota
		rootCause
		risk
		confidence
		actions
		timeline
	)
	current := none

	eachLine(text, func(line string) {
		switch {
		case containsFold(line, "ROOT CAUSE:"):
			current = rootCause
			out.RootCause = valueAfterColon(line)
			return
		case containsFold(line, "RISK LEVEL:"):
			current = risk
			if v := valueAfterColon(line); v != "" {
				out.RiskLevel = normalizeLevel(v)
				current = none
			}
			return
		case containsFold(line, "CONFIDENCE:"):
			current = confidence
			if v := valueAfterColon(line); v != "" {
				out.Confidence = parseConfidence(v, out.Confidence)
				current = none
			}
			return
		case containsAnyFold(line, "IMMEDIATE ACTIONS:", "RECOMMENDED ACTIONS:"):
			current = actions
			return
		case containsFold(line, "TIMELINE:"):
			current = timeline
			return
		}

		switch current {
		case rootCause:
			if out.RootCause == "" {
				out.RootCause = line
			}
		case risk:
			out.RiskLevel = normalizeLevel(line)
			current = none
		case confidence:
			out.Confidence = parseConfidence(line, out.Confidence)
			current = none
		case actions:
			if isListItem(line) {
				out.Actions = append(out.Actions, line)
			}
		case timeline:
			if isListItem(line) {
				out.Timeline = append(out.Timeline, line)
			}
		}
	})

	return out
}

// parseConfidence accepts "85%", "85" or "0.85" and returns a 0..1 value.
func parseConfidence(s string, fallback float64) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fallback
	}
	if v > 1 {
		v /= 100
	}
	if v > 1 {
		return fallback
	}
	return v
}
