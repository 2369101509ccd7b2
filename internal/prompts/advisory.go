package prompts

import "fmt"

// CorrosionParams are the process conditions for a corrosion assessment.
type CorrosionParams struct {
	Material    string
	Temperature float64 // °C
	PH          float64
	Pressure    float64 // bar
	Velocity    float64 // m/s
}

func BuildIncidentPrompt(logs string) string {
	return fmt.Sprintf(`You are a Virtual Control Room Advisor for an oil and gas facility. Analyze the following control room logs and provide a detailed incident analysis.

CONTROL ROOM LOGS:
%s

Provide your analysis in this exact format:

ROOT CAUSE:
[Identify the root cause of the incident]

RISK LEVEL:
[HIGH/MEDIUM/LOW]

CONFIDENCE:
[Confidence percentage, e.g., 85%%]

IMMEDIATE ACTIONS:
- [Action 1]
- [Action 2]
- [Action 3]

RECOVERY TIMELINE:
- [Timeline step 1]
- [Timeline step 2]
- [Timeline step 3]

Be specific and actionable. Focus on immediate response and safety.`, logs)
}

func BuildSafetyPrompt(task string) string {
	return fmt.Sprintf(`You are an AI Safety Advisor for oil and gas operations. Analyze the following job task and provide a comprehensive safety assessment.

JOB TASK:
%s

Provide your assessment in this exact format:

HAZARD LEVEL:
[HIGH/MEDIUM/LOW]

IDENTIFIED HAZARDS:
- [Hazard 1]
- [Hazard 2]
- [Hazard 3]

RECOMMENDED MITIGATIONS:
- [Mitigation 1]
- [Mitigation 2]
- [Mitigation 3]

RELEVANT STANDARDS:
- [Standard 1]
- [Standard 2]
- [Standard 3]

Be thorough and specific. Include industry practices and applicable safety standards.`, task)
}

func BuildCorrosionPrompt(p CorrosionParams) string {
	return fmt.Sprintf(`You are a Corrosion Engineering AI analyzing process equipment. Assess the corrosion risk based on the following parameters:

MATERIAL: %s
OPERATING TEMPERATURE: %.1f°C
pH LEVEL: %.1f
OPERATING PRESSURE: %.1f bar
FLUID VELOCITY: %.1f m/s

Provide your assessment in this exact format:

CORROSION RISK:
[HIGH/MEDIUM/LOW]

CORROSION RATE:
[Rate in mm/year]

CORROSION MECHANISMS:
- [Mechanism 1]
- [Mechanism 2]
- [Mechanism 3]

RECOMMENDATIONS:
- [Recommendation 1]
- [Recommendation 2]
- [Recommendation 3]

ESTIMATED LIFE:
[Equipment lifetime estimate]

Base your analysis on industry standards, material properties, and process conditions. Be specific and technical.`,
		p.Material, p.Temperature, p.PH, p.Pressure, p.Velocity)
}
