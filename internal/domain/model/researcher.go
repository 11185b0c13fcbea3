// Package model contains domain models passed between layers.
package model

import "encoding/json"

// ResearcherRecord mirrors one row of the assessments table. JSON-typed
// columns are kept raw here; the domain packages decode them leniently so a
// malformed blob never invalidates the whole record.
type ResearcherRecord struct {
	ID                   string          `json:"id"`
	FirstName            string          `json:"first_name"`
	LastName             string          `json:"last_name"`
	Email                string          `json:"email"`
	University           string          `json:"university"`
	UniversitySchool     string          `json:"university_school"`
	Title                string          `json:"title"`
	Objectives           string          `json:"objectives"`
	Targets              json.RawMessage `json:"targets"`
	Tags                 []string        `json:"tags"`
	Modules              json.RawMessage `json:"modules"`
	Publications         json.RawMessage `json:"publications"`
	ImpactAssessment     json.RawMessage `json:"impact_assessment"`
	ProfilePicture       string          `json:"profile_picture"`
	PublicationsOverview string          `json:"publications_overview"`
}

// Name returns the display name, tolerating missing parts.
func (r ResearcherRecord) Name() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// TargetImpact is one target-level impact annotation from an assessment.
type TargetImpact struct {
	TargetID        string `json:"targetId"`
	ImpactType      string `json:"impactType"`      // positive | negative
	ImpactDirection string `json:"impactDirection"` // direct | indirect
	Evidence        string `json:"evidence,omitempty"`
}

// ImpactAssessment is the optional per-record assessment payload.
type ImpactAssessment struct {
	TargetImpacts   []TargetImpact `json:"targetImpacts"`
	Insights        string         `json:"insights"`
	RecommendedTags []string       `json:"recommendedTags"`
}

// DecodeImpactAssessment parses the raw impact_assessment column. A missing
// or malformed blob yields the zero value; the record stays usable.
func (r ResearcherRecord) DecodeImpactAssessment() ImpactAssessment {
	var ia ImpactAssessment
	if len(r.ImpactAssessment) > 0 {
		_ = json.Unmarshal(r.ImpactAssessment, &ia)
	}
	return ia
}
