package parser

import "strings"

const (
	LevelHigh   = "HIGH"
	LevelMedium = "MEDIUM"
	LevelLow    = "LOW"
)

// normalizeLevel maps free text such as "High - immediate" onto HIGH/MEDIUM/LOW.
// Anything unrecognised is MEDIUM.
func normalizeLevel(s string) string {
	s = strings.ToUpper(s)
	switch {
	case strings.Contains(s, LevelHigh):
		return LevelHigh
	case strings.Contains(s, LevelLow):
		return LevelLow
	default:
		return LevelMedium
	}
}
