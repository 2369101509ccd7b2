package models

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Equipment string `json:"equipment" binding:"required" example:"Control Valve"`
	Problem   string `json:"problem" binding:"required" example:"Valve not responding to 4-20mA signal"`
	ErrorCode string `json:"error_code,omitempty" example:"E-104"`
}

// ResponseSections is the segmented model completion for a troubleshooting query.
type ResponseSections struct {
	Analysis       string   `json:"analysis"`
	Causes         []string `json:"causes"`
	Steps          []string `json:"steps"`
	SafetyWarnings []string `json:"safety_warnings"`
	EquipmentNotes string   `json:"equipment_notes"`
}

// SearchResponse is returned by POST /search on success.
type SearchResponse struct {
	Success   bool             `json:"success"`
	Equipment string           `json:"equipment"`
	Response  ResponseSections `json:"response"`
}
