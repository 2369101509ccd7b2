// Package prompts builds the instructions sent to the text-completion service.
// Inputs are interpolated verbatim.
package prompts

import "fmt"

// NoErrorCode replaces an empty error code in the troubleshooting prompt.
const NoErrorCode = "None provided"

// BuildTroubleshootingPrompt asks for a five-section answer whose headings
// match those recognised by parser.ParseTroubleshooting.
func BuildTroubleshootingPrompt(equipment, problem, errorCode string) string {
	if errorCode == "" {
		errorCode = NoErrorCode
	}

	return fmt.Sprintf(`You are an expert Process Control System Technician at Aramco.

Analyze the following troubleshooting request and provide a clear, structured response:

EQUIPMENT: %s
PROBLEM: %s
ERROR CODE: %s

IMPORTANT SAFETY GUIDELINES:
- Always prioritize safety over production
- Follow Aramco safety protocols
- Verify equipment isolation before maintenance
- Use proper PPE and safety equipment
- Never bypass safety systems
- Follow lockout/tagout procedures

Please provide your response in this exact format:

ANALYSIS:
[Your analysis of the problem]

POSSIBLE CAUSES:
1. [Cause 1]
2. [Cause 2]
3. [Cause 3]

TROUBLESHOOTING STEPS:
1. [Step 1 - include safety precautions]
2. [Step 2 - include safety precautions]
3. [Step 3 - include safety precautions]
4. [Continue as needed]

SAFETY WARNINGS:
- [Important safety warning 1]
- [Important safety warning 2]
- [Important safety warning 3]

EQUIPMENT NOTES:
[Specific considerations for this equipment type]

Provide your response in a clear, structured format that a technician can follow safely.`, equipment, problem, errorCode)
}
