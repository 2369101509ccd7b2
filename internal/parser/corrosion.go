package parser

import (
	"regexp"
	"strconv"

	"pcst_ai/internal/models"
)

const (
	defaultCorrosionRate = 0.5 // mm/year
	defaultEstimatedLife = "10-15 years"
)

var rateRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseCorrosion extracts risk, rate, mechanisms, recommendations and
// estimated life from a corrosion assessment.
func ParseCorrosion(text string) models.CorrosionDetails {
	out := models.CorrosionDetails{
		RiskLevel:       LevelMedium,
		CorrosionRate:   defaultCorrosionRate,
		Mechanisms:      []string{},
		Recommendations: []string{},
		EstimatedLife:   defaultEstimatedLife,
	}

	const (
		none = iota
		risk
		rate
		life
		mechanisms
		recommendations
	)
	current := none

	// scalar records an inline value or arms the next line to supply it.
	scalar := func(line string, next int, set func(string)) {
		if v := valueAfterColon(line); v != "" {
			set(v)
			current = none
			return
		}
		current = next
	}
	setRisk := func(v string) { out.RiskLevel = normalizeLevel(v) }
	setRate := func(v string) {
		if m := rateRe.FindString(v); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				out.CorrosionRate = f
			}
		}
	}
	setLife := func(v string) { out.EstimatedLife = v }

	eachLine(text, func(line string) {
		switch {
		case containsAnyFold(line, "CORROSION RISK:", "RISK LEVEL:"):
			scalar(line, risk, setRisk)
			return
		case containsFold(line, "CORROSION RATE:"):
			scalar(line, rate, setRate)
			return
		case containsAnyFold(line, "ESTIMATED LIFE:", "EQUIPMENT LIFE:"):
			scalar(line, life, setLife)
			return
		case containsFold(line, "MECHANISMS:"):
			current = mechanisms
			return
		case containsFold(line, "RECOMMENDATIONS:"):
			current = recommendations
			return
		}

		switch current {
		case risk:
			setRisk(line)
			current = none
		case rate:
			setRate(line)
			current = none
		case life:
			setLife(line)
			current = none
		case mechanisms:
			if isListItem(line) {
				out.Mechanisms = append(out.Mechanisms, line)
			}
		case recommendations:
			if isListItem(line) {
				out.Recommendations = append(out.Recommendations, line)
			}
		}
	})

	return out
}
