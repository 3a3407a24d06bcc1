package model

// ResponseMetrics is derived from a survey's questions and responses. It is
// never a source of truth: recompute it from (questions, responses, totalSent)
// whenever responses change.
type ResponseMetrics struct {
	TotalSent             int            `json:"totalSent"`
	TotalResponses        int            `json:"totalResponses"`
	PartialResponses      int            `json:"partialResponses"`
	AverageCompletionTime float64        `json:"averageCompletionTime"` // minutes
	ResponseRate          float64        `json:"responseRate"`          // percent of totalSent, 0 when nothing sent
	DemographicBreakdown  map[string]int `json:"demographicBreakdown"`
}

// Clone returns a deep copy of the metrics.
func (m ResponseMetrics) Clone() ResponseMetrics {
	out := m
	if m.DemographicBreakdown != nil {
		out.DemographicBreakdown = make(map[string]int, len(m.DemographicBreakdown))
		for k, v := range m.DemographicBreakdown {
			out.DemographicBreakdown[k] = v
		}
	}
	return out
}

// ZeroMetrics returns an all-zero metrics value with an initialized breakdown.
func ZeroMetrics() ResponseMetrics {
	return ResponseMetrics{DemographicBreakdown: map[string]int{}}
}

// QuestionStats is the type-specific aggregate for one question.
//
// Choice questions fill OptionCounts; rating/scale questions fill Average and
// Distribution (index 0 holds the count of rating 1); text and checkbox
// questions fill Answers. Responses counts answered values in every case.
type QuestionStats struct {
	QuestionID   string         `json:"questionId"`
	Question     string         `json:"question"`
	Type         QuestionType   `json:"type"`
	Responses    int            `json:"responses"`
	OptionCounts map[string]int `json:"optionCounts,omitempty"`
	Average      float64        `json:"average,omitempty"`
	Distribution []int          `json:"distribution,omitempty"`
	Answers      []string       `json:"answers,omitempty"`
}

// TrendPoint is one calendar day's response count.
type TrendPoint struct {
	Date  string `json:"date"` // UTC day, 2006-01-02
	Count int    `json:"count"`
}

// ReportData is the full aggregated report for a survey.
type ReportData struct {
	SurveyID              string          `json:"surveyId"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	TotalResponses        int             `json:"totalResponses"`
	CompletionRate        float64         `json:"completionRate"` // percent, 0 when no responses
	AverageCompletionTime float64         `json:"averageCompletionTime"`
	QuestionStats         []QuestionStats `json:"questionStats"`
	ResponseTrend         []TrendPoint    `json:"responseTrend"` // chronological
	Metrics               ResponseMetrics `json:"metrics"`
}
