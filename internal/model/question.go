package model

// QuestionType defines the answer shape a question expects
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice" // single pick from options
	QuestionCheckbox       QuestionType = "checkbox"        // multiple picks from options
	QuestionDropdown       QuestionType = "dropdown"        // single pick from options
	QuestionText           QuestionType = "text"            // free text
	QuestionRating         QuestionType = "rating"          // numeric 1..N
	QuestionScale          QuestionType = "scale"           // numeric 1..N with end labels
)

// DefaultScaleSize is used when a rating/scale question carries no explicit config.
const DefaultScaleSize = 5

// ValidQuestionType reports whether t is a recognized question type.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown,
		QuestionText, QuestionRating, QuestionScale:
		return true
	}
	return false
}

// ScaleConfig is the explicit rating/scale payload. The legacy data model
// packed this into the generic options list as [size, startLabel, endLabel].
type ScaleConfig struct {
	Size       int    `json:"size"`
	StartLabel string `json:"startLabel,omitempty"`
	EndLabel   string `json:"endLabel,omitempty"`
}

// Question is a single prompt in a survey
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"` // choice types only
	Scale       *ScaleConfig `json:"scale,omitempty"`   // rating and scale types only
}

// IsChoice reports whether the question offers a fixed option list.
func (q *Question) IsChoice() bool {
	switch q.Type {
	case QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// IsScaled reports whether the question is answered with a numeric value.
func (q *Question) IsScaled() bool {
	return q.Type == QuestionRating || q.Type == QuestionScale
}

// ScaleSize returns the configured scale size for rating/scale questions,
// falling back to DefaultScaleSize.
func (q *Question) ScaleSize() int {
	if q.Scale != nil && q.Scale.Size > 0 {
		return q.Scale.Size
	}
	return DefaultScaleSize
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	if q.Scale != nil {
		sc := *q.Scale
		out.Scale = &sc
	}
	return out
}
