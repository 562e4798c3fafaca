package auth

// Scopes used by the assessment service.
const (
	ScopeAssessmentRead  = "assessment:read"
	ScopeAssessmentWrite = "assessment:write"
)
