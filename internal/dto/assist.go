package dto

import (
	"yojana-sahayak/internal/models"
)

type QueryRequest struct {
	Transcript string `json:"transcript"`
	Lang       string `json:"lang"`
	SessionID  string `json:"session_id"`
}

type QueryResponse struct {
	Transcript string     `json:"transcript"`
	Lang       string     `json:"lang"`
	Category   string     `json:"category"`
	Scheme     SchemeView `json:"scheme"`
	AudioURL   *string    `json:"audioUrl"`
}

type TranscribeResponse struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type AudioResponse struct {
	AudioURL string `json:"audioUrl"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type SearchResponse struct {
	Query   string       `json:"query"`
	Results []SchemeView `json:"results"`
}

// StepView is one application step rendered in a single language.
type StepView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Input       string `json:"input,omitempty"`
	Link        string `json:"link,omitempty"`
	Action      string `json:"action"`
}

// SchemeView is a scheme rendered in a single language for API
// responses. Explanation fields are only set on the /query path.
type SchemeView struct {
	SchemeID          string     `json:"scheme_id"`
	Category          string     `json:"category"`
	Name              string     `json:"name"`
	Eligibility       string     `json:"eligibility"`
	Benefit           string     `json:"benefit"`
	Documents         []string   `json:"documents"`
	Steps             []StepView `json:"steps"`
	Helpline          string     `json:"helpline,omitempty"`
	GovWebsite        string     `json:"govWebsite,omitempty"`
	Explanation       string     `json:"explanation,omitempty"`
	ExplanationSource string     `json:"explanationSource,omitempty"`
}

// NewSchemeView flattens a localized scheme into the requested language.
func NewSchemeView(s *models.Scheme, lang string) SchemeView {
	docs := make([]string, 0, len(s.Documents))
	for _, d := range s.Documents {
		docs = append(docs, d.In(lang))
	}

	steps := make([]StepView, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, StepView{
			Title:       step.Title.In(lang),
			Description: step.Description.In(lang),
			Input:       step.Input.In(lang),
			Link:        step.Link,
			Action:      string(step.Action),
		})
	}

	return SchemeView{
		SchemeID:    s.SchemeID,
		Category:    string(s.Category),
		Name:        s.Name.In(lang),
		Eligibility: s.Eligibility.In(lang),
		Benefit:     s.Benefit.In(lang),
		Documents:   docs,
		Steps:       steps,
		Helpline:    s.Helpline,
		GovWebsite:  s.GovWebsite,
	}
}
