package models

// Category is a flat tag selecting one scheme topic.
type Category string

const (
	CategoryFarmer  Category = "farmer"
	CategoryStudent Category = "student"
	CategoryWoman   Category = "woman"
)

// Categories returns all supported categories in declaration order.
// Declaration order doubles as classifier priority order.
func Categories() []Category {
	return []Category{CategoryFarmer, CategoryStudent, CategoryWoman}
}

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryFarmer, CategoryStudent, CategoryWoman:
		return Category(s), true
	}
	return "", false
}

// LocalizedText maps a language code ("hi", "en") to a string.
type LocalizedText map[string]string

// In returns the text for the given language, falling back to English
// and then to any available language.
func (t LocalizedText) In(lang string) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t["en"]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// StepAction tags what kind of action an application step asks of the user.
type StepAction string

const (
	ActionLink   StepAction = "link"
	ActionClick  StepAction = "click"
	ActionFill   StepAction = "fill"
	ActionSubmit StepAction = "submit"
	ActionInfo   StepAction = "info"
)

// Step is one instruction in a scheme's application flow.
type Step struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Input       LocalizedText `json:"input,omitempty"`
	Link        string        `json:"link,omitempty"`
	Action      StepAction    `json:"action"`
}

// Scheme is a government welfare program record.
type Scheme struct {
	SchemeID    string          `json:"scheme_id"`
	Category    Category        `json:"category"`
	Name        LocalizedText   `json:"name"`
	Eligibility LocalizedText   `json:"eligibility"`
	Benefit     LocalizedText   `json:"benefit"`
	Documents   []LocalizedText `json:"documents"`
	Steps       []Step          `json:"steps"`
	Helpline    string          `json:"helpline,omitempty"`
	GovWebsite  string          `json:"govWebsite,omitempty"`
}

// IsComplete reports whether the scheme carries everything the
// explanation generator needs. Partial store records must not reach
// generation; callers fall back to the built-in catalog instead.
func (s *Scheme) IsComplete() bool {
	if s == nil {
		return false
	}
	if s.SchemeID == "" || len(s.Name) == 0 || len(s.Benefit) == 0 || len(s.Eligibility) == 0 {
		return false
	}
	return len(s.Documents) > 0 && len(s.Steps) > 0
}
