package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"surveyforge/internal/cache"
	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

// ResponseService records submissions and keeps survey metrics current. Every
// accepted response recomputes the aggregate synchronously, so a read
// immediately after a write always sees the new totals.
type ResponseService struct {
	surveyRepo repository.SurveyRepo
	cache      cache.ReportCache // optional; nil disables invalidation
}

// NewResponseService creates a new response service
func NewResponseService(surveyRepo repository.SurveyRepo, reportCache cache.ReportCache) *ResponseService {
	return &ResponseService{surveyRepo: surveyRepo, cache: reportCache}
}

// SubmitRequest is an incoming response. Answers may cover any subset of the
// survey's questions; a partial set is still recorded.
type SubmitRequest struct {
	Answers      []model.Answer          `json:"answers"`
	Channel      string                  `json:"channel,omitempty"`
	Demographics *model.Demographics     `json:"demographics,omitempty"`
	Metadata     *model.ResponseMetadata `json:"metadata,omitempty"`
}

// Submit records a response against a published survey and recomputes the
// survey's metrics in the same write.
func (s *ResponseService) Submit(ctx context.Context, surveyID string, req SubmitRequest) (*model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFoundError("survey not found")
	}
	if !survey.IsPublished {
		return nil, NewInvalidError("survey is not accepting responses")
	}
	if len(req.Answers) == 0 {
		return nil, NewInvalidError("a response needs at least one answer")
	}

	if !survey.Settings.AllowDuplicateResponses && req.Metadata != nil && req.Metadata.RespondentKey != "" {
		for _, r := range survey.Responses {
			if r.Metadata != nil && r.Metadata.RespondentKey == req.Metadata.RespondentKey {
				return nil, NewConflictError("respondent has already submitted")
			}
		}
	}

	response := model.Response{
		ID:           uuid.NewString(),
		SurveyID:     surveyID,
		Answers:      req.Answers,
		SubmittedAt:  time.Now().UTC(),
		Channel:      req.Channel,
		Demographics: req.Demographics,
		Metadata:     req.Metadata,
	}
	survey.Responses = append(survey.Responses, response)
	survey.Metrics = ComputeMetrics(survey.Questions, survey.Responses, survey.Metrics.TotalSent)

	if err := s.surveyRepo.Update(ctx, survey); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, surveyID); err != nil {
			log.Printf("failed to invalidate report cache for survey %s: %v", surveyID, err)
		}
	}
	return &response, nil
}

// List returns all responses recorded for a survey.
func (s *ResponseService) List(ctx context.Context, surveyID string) ([]model.Response, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFoundError("survey not found")
	}
	return survey.Responses, nil
}
