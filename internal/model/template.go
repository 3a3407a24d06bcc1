package model

import "time"

// Template is a reusable, named set of questions used to seed new surveys.
// Builtin templates ship with the service; custom templates are user-saved.
type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	IsCustom    bool       `json:"isCustom"`
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() *Template {
	out := *t
	out.Questions = make([]Question, len(t.Questions))
	for i := range t.Questions {
		out.Questions[i] = t.Questions[i].Clone()
	}
	return &out
}
