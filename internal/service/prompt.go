package service

import (
	"fmt"
	"strings"

	"yojana-sahayak/internal/models"
)

// Prompt construction and the fallback template are pure functions over
// scheme data. They never make network calls.

var systemPrompts = map[string]string{
	"hi": "आप \"योजना सहायक\" हैं — भारत सरकार की योजनाओं के विशेषज्ञ सहायक।\n" +
		"नियम:\n" +
		"1. बहुत सरल, बोलचाल की भाषा में उत्तर दें — गाँव के व्यक्ति को समझाने जैसे।\n" +
		"2. छोटे वाक्य लिखें। कानूनी या सरकारी भाषा का प्रयोग न करें।\n" +
		"3. चरण हमेशा क्रमांकित (1, 2, 3…) लिखें।\n" +
		"4. हर योजना के लिए बताएँ: पात्रता, लाभ, दस्तावेज़, आवेदन चरण।",
	"en": "You are \"Yojana Sahayak\" — an expert assistant for Indian government schemes.\n" +
		"Rules:\n" +
		"1. Use very simple, colloquial words — explain as if to someone with low literacy.\n" +
		"2. Keep sentences short. Never use legal or formal register.\n" +
		"3. Always number the steps (1, 2, 3…).\n" +
		"4. For every scheme mention: eligibility, benefit, documents, application steps.",
}

// SystemPrompt returns the fixed persona instruction for a language.
func SystemPrompt(lang string) string {
	if p, ok := systemPrompts[lang]; ok {
		return p
	}
	return systemPrompts["en"]
}

// BuildPrompt combines the scheme data block, the rendered step list and
// the literal user query into one generation prompt.
func BuildPrompt(scheme *models.Scheme, userQuery, lang string) string {
	var b strings.Builder

	b.WriteString("Scheme: ")
	b.WriteString(scheme.Name.In(lang))
	b.WriteString("\nBenefit: ")
	b.WriteString(scheme.Benefit.In(lang))
	b.WriteString("\nEligibility: ")
	b.WriteString(scheme.Eligibility.In(lang))
	b.WriteString("\nDocuments: ")
	b.WriteString(joinDocuments(scheme.Documents, lang))
	b.WriteString("\nSteps:\n")
	b.WriteString(renderSteps(scheme.Steps, lang))
	b.WriteString("\nUser asked: ")
	b.WriteString(userQuery)
	b.WriteString("\n\nExplain this scheme to the user in their language, using the rules above.")

	return b.String()
}

var fallbackLabels = map[string]struct {
	benefit   string
	eligible  string
	documents string
	steps     string
}{
	"hi": {
		benefit:   "आपको मिलेगा",
		eligible:  "कौन आवेदन कर सकता है",
		documents: "ज़रूरी दस्तावेज़",
		steps:     "आवेदन के चरण",
	},
	"en": {
		benefit:   "You will get",
		eligible:  "Who can apply",
		documents: "Documents needed",
		steps:     "How to apply",
	},
}

// FallbackExplanation renders the same information the model would have
// seen, as a fixed multi-line template. It has no external dependencies
// and is deterministic for identical inputs.
func FallbackExplanation(scheme *models.Scheme, lang string) string {
	labels, ok := fallbackLabels[lang]
	if !ok {
		labels = fallbackLabels["en"]
	}

	var b strings.Builder
	b.WriteString(scheme.Name.In(lang))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s: %s\n", labels.benefit, scheme.Benefit.In(lang))
	fmt.Fprintf(&b, "%s: %s\n", labels.eligible, scheme.Eligibility.In(lang))
	fmt.Fprintf(&b, "%s: %s\n", labels.documents, joinDocuments(scheme.Documents, lang))
	b.WriteString("\n")
	b.WriteString(labels.steps)
	b.WriteString(":\n")
	b.WriteString(renderSteps(scheme.Steps, lang))

	return b.String()
}

func joinDocuments(docs []models.LocalizedText, lang string) string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.In(lang))
	}
	return strings.Join(names, ", ")
}

// renderSteps produces a 1-indexed list, one sentence per step.
func renderSteps(steps []models.Step, lang string) string {
	var b strings.Builder
	for i, step := range steps {
		text := step.Description.In(lang)
		if text == "" {
			text = step.Title.In(lang)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, text)
	}
	return b.String()
}
