package model

import "time"

// PromptID uniquely identifies a prompt within its owner's partition
type PromptID string

// PromptStatus is the moderation state of a prompt
type PromptStatus string

const (
	PromptStatusPending  PromptStatus = "pending"
	PromptStatusApproved PromptStatus = "approved"
	PromptStatusRejected PromptStatus = "rejected"
)

// LocalizedText is a prompt text in a single language
type LocalizedText struct {
	Language string
	Text     string
}

// Prompt represents a submitted game prompt
// Prompts are partitioned by owning username; point operations always
// require both the username and the prompt ID
type Prompt struct {
	ID       PromptID
	Username string // owning player; partition key
	// Texts holds the submitted text first (tagged with its detected
	// language), followed by translations into the remaining supported
	// languages
	Texts     []LocalizedText
	Status    PromptStatus
	Severity  float64 // mean content-safety severity recorded at moderation
	CreatedAt time.Time
}

// EnglishText returns the English text of the prompt, falling back to the
// submitted text when no English translation is present
func (p *Prompt) EnglishText() string {
	for _, t := range p.Texts {
		if t.Language == "en" {
			return t.Text
		}
	}
	if len(p.Texts) > 0 {
		return p.Texts[0].Text
	}
	return ""
}
