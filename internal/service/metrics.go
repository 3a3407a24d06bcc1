package service

import (
	"sort"

	"surveyforge/internal/model"
)

// Metrics aggregation is deliberately a set of pure functions over
// (questions, responses): callable at any time, idempotent, and decoupled
// from the write path. ResponseService calls ComputeMetrics after every
// submission; ReportService calls BuildReport on demand.

// ComputeMetrics derives ResponseMetrics from a survey's questions and
// responses. totalSent is carried input, not derived.
func ComputeMetrics(questions []model.Question, responses []model.Response, totalSent int) model.ResponseMetrics {
	m := model.ZeroMetrics()
	m.TotalSent = totalSent
	m.TotalResponses = len(responses)

	var timeSum float64
	var timeCount int
	for _, r := range responses {
		if len(r.Answers) < len(questions) {
			m.PartialResponses++
		}
		if r.Metadata != nil && r.Metadata.CompletionTime > 0 {
			timeSum += r.Metadata.CompletionTime
			timeCount++
		}
		if r.Demographics != nil && r.Demographics.Location != "" {
			m.DemographicBreakdown[r.Demographics.Location]++
		}
	}
	if timeCount > 0 {
		m.AverageCompletionTime = timeSum / float64(timeCount)
	}
	if totalSent > 0 {
		m.ResponseRate = float64(m.TotalResponses) / float64(totalSent) * 100
	}
	return m
}

// CompletionRate returns the percentage of responses that answered every
// question. A survey with no responses has a completion rate of 0, never NaN.
func CompletionRate(questions []model.Question, responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	completed := 0
	for _, r := range responses {
		if len(r.Answers) == len(questions) {
			completed++
		}
	}
	return float64(completed) / float64(len(responses)) * 100
}

// BuildReport assembles the full aggregated report for a survey.
func BuildReport(survey *model.Survey) *model.ReportData {
	return &model.ReportData{
		SurveyID:              survey.ID,
		Title:                 survey.Title,
		Description:           survey.Description,
		TotalResponses:        len(survey.Responses),
		CompletionRate:        CompletionRate(survey.Questions, survey.Responses),
		AverageCompletionTime: survey.Metrics.AverageCompletionTime,
		QuestionStats:         BuildQuestionStats(survey.Questions, survey.Responses),
		ResponseTrend:         ResponseTrend(survey.Responses),
		Metrics:               ComputeMetrics(survey.Questions, survey.Responses, survey.Metrics.TotalSent),
	}
}

// BuildQuestionStats computes the type-specific aggregate for each question.
// Answers referencing question ids no longer present in the survey are
// skipped: removing a question never rewrites recorded responses.
func BuildQuestionStats(questions []model.Question, responses []model.Response) []model.QuestionStats {
	stats := make([]model.QuestionStats, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		answered := collectAnswers(q.ID, responses)

		st := model.QuestionStats{
			QuestionID: q.ID,
			Question:   q.Title,
			Type:       q.Type,
			Responses:  len(answered),
		}

		switch q.Type {
		case model.QuestionMultipleChoice, model.QuestionDropdown:
			st.OptionCounts = make(map[string]int, len(q.Options))
			for _, opt := range q.Options {
				st.OptionCounts[opt] = 0
			}
			for _, v := range answered {
				if _, ok := st.OptionCounts[v.Text]; ok {
					st.OptionCounts[v.Text]++
				}
			}
		case model.QuestionRating, model.QuestionScale:
			size := q.ScaleSize()
			st.Distribution = make([]int, size)
			var sum float64
			var count int
			for _, v := range answered {
				n, ok := v.Number()
				if !ok {
					continue
				}
				sum += n
				count++
				if bucket := int(n); bucket >= 1 && bucket <= size {
					st.Distribution[bucket-1]++
				}
			}
			if count > 0 {
				st.Average = sum / float64(count)
			}
		default: // text, checkbox: raw answers and a count
			for _, v := range answered {
				st.Answers = append(st.Answers, v.Strings()...)
			}
		}
		stats = append(stats, st)
	}
	return stats
}

// ResponseTrend buckets responses by UTC calendar day, sorted chronologically.
func ResponseTrend(responses []model.Response) []model.TrendPoint {
	counts := map[string]int{}
	for _, r := range responses {
		day := r.SubmittedAt.UTC().Format("2006-01-02")
		counts[day]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]model.TrendPoint, 0, len(days))
	for _, d := range days {
		out = append(out, model.TrendPoint{Date: d, Count: counts[d]})
	}
	return out
}

func collectAnswers(questionID string, responses []model.Response) []model.AnswerValue {
	var out []model.AnswerValue
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID && !a.Value.IsZero() {
				out = append(out, a.Value)
			}
		}
	}
	return out
}
