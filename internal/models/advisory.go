package models

// IncidentRequest carries control room logs for incident analysis.
type IncidentRequest struct {
	Logs string `json:"logs" binding:"required"`
}

type IncidentDetails struct {
	RootCause  string   `json:"rootCause"`
	RiskLevel  string   `json:"riskLevel"`  // HIGH | MEDIUM | LOW
	Confidence float64  `json:"confidence"` // 0..1
	Actions    []string `json:"actions"`
	Timeline   []string `json:"timeline"`
}

type IncidentResponse struct {
	Success  bool            `json:"success"`
	Response IncidentDetails `json:"response"`
}

// SafetyRequest describes a job task to assess.
type SafetyRequest struct {
	Task string `json:"task" binding:"required"`
}

type Hazard struct {
	Name        string `json:"name"`
	Severity    string `json:"severity"`    // High | Medium | Low
	Probability string `json:"probability"` // High | Medium | Low
}

type SafetyDetails struct {
	HazardLevel string   `json:"hazardLevel"`
	Hazards     []Hazard `json:"hazards"`
	Mitigations []string `json:"mitigations"`
	Standards   []string `json:"standards"`
}

type SafetyResponse struct {
	Success  bool          `json:"success"`
	Response SafetyDetails `json:"response"`
}

// CorrosionRequest holds process conditions. Pointers let zero readings
// (0 °C, 0 m/s) pass the required check.
type CorrosionRequest struct {
	Material    string   `json:"material" binding:"required"`
	Temperature *float64 `json:"temperature" binding:"required"` // °C
	PH          *float64 `json:"ph" binding:"required"`
	Pressure    *float64 `json:"pressure" binding:"required"` // bar
	Velocity    *float64 `json:"velocity" binding:"required"` // m/s
}

type CorrosionDetails struct {
	RiskLevel       string   `json:"riskLevel"`
	CorrosionRate   float64  `json:"corrosionRate"` // mm/year
	Mechanisms      []string `json:"mechanisms"`
	Recommendations []string `json:"recommendations"`
	EstimatedLife   string   `json:"estimatedLife"`
}

type CorrosionResponse struct {
	Success  bool             `json:"success"`
	Response CorrosionDetails `json:"response"`
}
