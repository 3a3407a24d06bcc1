package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// AnswerValue holds either a single text answer or a list of selections
// (checkbox questions). On the wire it is a bare string or a string array.
type AnswerValue struct {
	Text       string
	Selections []string
}

// MarshalJSON encodes the value as a string, or as an array when selections
// are present.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Selections != nil {
		return json.Marshal(v.Selections)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
		v.Selections = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	v.Text = ""
	v.Selections = list
	return nil
}

// IsZero reports whether the value carries no answer.
func (v AnswerValue) IsZero() bool {
	return v.Text == "" && len(v.Selections) == 0
}

// Strings flattens the value into its answered strings.
func (v AnswerValue) Strings() []string {
	if v.Selections != nil {
		return v.Selections
	}
	if v.Text == "" {
		return nil
	}
	return []string{v.Text}
}

// Number parses the value as a rating. The second return is false when the
// answer is not numeric.
func (v AnswerValue) Number() (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Answer pairs a question id with the respondent's value.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      AnswerValue `json:"answer"`
}

// Demographics is optional respondent information attached to a response.
type Demographics struct {
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`
	Language string `json:"language,omitempty"`
}

// ResponseMetadata carries submission context.
type ResponseMetadata struct {
	CompletionTime float64 `json:"completionTime,omitempty"` // minutes
	DeviceType     string  `json:"deviceType,omitempty"`
	Browser        string  `json:"browser,omitempty"`
	RespondentKey  string  `json:"respondentKey,omitempty"` // used for duplicate suppression
}

// Response is one respondent's full or partial set of answers to a survey.
// Responses are immutable once recorded.
type Response struct {
	ID           string            `json:"id"`
	SurveyID     string            `json:"surveyId"`
	Answers      []Answer          `json:"answers"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	Channel      string            `json:"channel,omitempty"`
	Demographics *Demographics     `json:"demographics,omitempty"`
	Metadata     *ResponseMetadata `json:"metadata,omitempty"`
}

// Clone returns a deep copy of the response.
func (r Response) Clone() Response {
	out := r
	out.Answers = make([]Answer, len(r.Answers))
	for i, a := range r.Answers {
		out.Answers[i] = a
		if a.Value.Selections != nil {
			out.Answers[i].Value.Selections = append([]string(nil), a.Value.Selections...)
		}
	}
	if r.Demographics != nil {
		d := *r.Demographics
		out.Demographics = &d
	}
	if r.Metadata != nil {
		m := *r.Metadata
		out.Metadata = &m
	}
	return out
}
