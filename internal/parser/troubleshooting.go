// Package parser turns loosely formatted model completions into structured records.
// Parsers never fail: missing sections leave their fields at defaults.
package parser

import (
	"strings"

	"pcst_ai/internal/models"
)

type section int

const (
	sectionNone section = iota
	sectionAnalysis
	sectionCauses
	sectionSteps
	sectionSafetyWarnings
	sectionEquipmentNotes
)

// Heading markers, matched case-insensitively anywhere in a line.
const (
	MarkerAnalysis       = "ANALYSIS:"
	MarkerCauses         = "POSSIBLE CAUSES:"
	MarkerSteps          = "TROUBLESHOOTING STEPS:"
	MarkerSafetyWarnings = "SAFETY WARNINGS:"
	MarkerEquipmentNotes = "EQUIPMENT NOTES:"
)

// numberedPrefixes are the only list prefixes recognised in causes and steps.
var numberedPrefixes = []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "9."}

// segmenter is the scan state for one completion.
type segmenter struct {
	current section
	out     models.ResponseSections
	notes   strings.Builder
}

// rule is one entry of the priority table. The first rule whose match
// returns true consumes the line.
type rule struct {
	match func(s *segmenter, line string) bool
	apply func(s *segmenter, line string)
}

// troubleshootingRules is evaluated top to bottom for every line. Headings
// come first, so a line holding a marker is always a transition even when
// it also looks like a list item.
var troubleshootingRules = []rule{
	{
		match: func(_ *segmenter, line string) bool { return containsFold(line, MarkerAnalysis) },
		apply: func(s *segmenter, line string) {
			s.current = sectionAnalysis
			i := indexFold(line, MarkerAnalysis)
			s.out.Analysis = strings.TrimSpace(line[i+len(MarkerAnalysis):])
		},
	},
	headingRule(MarkerCauses, sectionCauses),
	headingRule(MarkerSteps, sectionSteps),
	headingRule(MarkerSafetyWarnings, sectionSafetyWarnings),
	headingRule(MarkerEquipmentNotes, sectionEquipmentNotes),
	{
		// Numbered lines are consumed in every section but kept only in
		// causes and steps.
		match: func(_ *segmenter, line string) bool { return hasNumberedPrefix(line) },
		apply: func(s *segmenter, line string) {
			switch s.current {
			case sectionCauses:
				s.out.Causes = append(s.out.Causes, line)
			case sectionSteps:
				s.out.Steps = append(s.out.Steps, line)
			}
		},
	},
	{
		match: func(s *segmenter, line string) bool {
			return s.current == sectionSafetyWarnings && strings.HasPrefix(line, "-")
		},
		apply: func(s *segmenter, line string) {
			s.out.SafetyWarnings = append(s.out.SafetyWarnings, line)
		},
	},
	{
		match: func(s *segmenter, _ string) bool { return s.current == sectionEquipmentNotes },
		apply: func(s *segmenter, line string) {
			s.notes.WriteString(line)
			s.notes.WriteByte(' ')
		},
	},
	{
		match: func(s *segmenter, _ string) bool {
			return s.current == sectionAnalysis && s.out.Analysis == ""
		},
		apply: func(s *segmenter, line string) { s.out.Analysis = line },
	},
}

func headingRule(marker string, next section) rule {
	return rule{
		match: func(_ *segmenter, line string) bool { return containsFold(line, marker) },
		apply: func(s *segmenter, _ string) { s.current = next },
	}
}

func hasNumberedPrefix(line string) bool {
	for _, p := range numberedPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// ParseTroubleshooting segments a troubleshooting completion into its five
// sections in a single pass. Unmatched lines are dropped.
func ParseTroubleshooting(text string) models.ResponseSections {
	s := &segmenter{
		out: models.ResponseSections{
			Causes:         []string{},
			Steps:          []string{},
			SafetyWarnings: []string{},
		},
	}

	eachLine(text, func(line string) {
		for _, r := range troubleshootingRules {
			if r.match(s, line) {
				r.apply(s, line)
				return
			}
		}
	})

	s.out.EquipmentNotes = strings.TrimSpace(s.notes.String())
	return s.out
}
