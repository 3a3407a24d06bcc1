package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"surveyforge/internal/cache"
	"surveyforge/internal/model"
	"surveyforge/internal/repository"
)

// ReportService produces aggregated reports, their file exports and the
// emailed variant. Reports are always rebuilt from stored responses; the
// cache only short-circuits repeated reads between submissions.
type ReportService struct {
	surveyRepo   repository.SurveyRepo
	cache        cache.ReportCache // optional; nil disables caching
	mailer       *ReportMailer     // optional; nil makes Email unavailable
	shareBaseURL string
}

// NewReportService creates a new report service
func NewReportService(surveyRepo repository.SurveyRepo, reportCache cache.ReportCache, mailer *ReportMailer, shareBaseURL string) *ReportService {
	return &ReportService{
		surveyRepo:   surveyRepo,
		cache:        reportCache,
		mailer:       mailer,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
	}
}

// Report returns the aggregated report for a survey, cache-aside.
func (s *ReportService) Report(ctx context.Context, surveyID string) (*model.ReportData, error) {
	if s.cache != nil {
		cached, err := s.cache.GetReport(ctx, surveyID)
		if err != nil {
			log.Printf("report cache read failed for survey %s: %v", surveyID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFoundError("survey not found")
	}

	report := BuildReport(survey)
	if s.cache != nil {
		if err := s.cache.SetReport(ctx, report); err != nil {
			log.Printf("report cache write failed for survey %s: %v", surveyID, err)
		}
	}
	return report, nil
}

// Export renders the survey's report in the requested format.
func (s *ReportService) Export(ctx context.Context, surveyID, format string) (*ExportResult, error) {
	report, err := s.Report(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return ExportReport(report, format)
}

// Email asks the notification service to deliver the report link to the
// recipient.
func (s *ReportService) Email(ctx context.Context, surveyID, recipientEmail string) (*SendAck, error) {
	if !validEmail(recipientEmail) {
		return nil, NewInvalidError(fmt.Sprintf("invalid email %q", recipientEmail))
	}
	if s.mailer == nil {
		return nil, NewUnavailableError("report email is not configured")
	}

	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFoundError("survey not found")
	}

	reportURL := fmt.Sprintf("%s/survey/%s/report", s.shareBaseURL, surveyID)
	return s.mailer.SendReport(ctx, reportURL, recipientEmail, survey.Title)
}
