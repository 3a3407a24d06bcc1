package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ReportMailer delivers report emails through the external notification
// service. The service owns rendering and delivery; we send it the report URL
// and recipient and relay its acknowledgement.
type ReportMailer struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
}

// NewReportMailer creates a mailer client for the given service endpoint.
func NewReportMailer(baseURL, token string) *ReportMailer {
	return &ReportMailer{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxRetries: 2,
	}
}

// SendAck is the notification service's response.
type SendAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type sendReportRequest struct {
	ReportURL      string `json:"reportUrl"`
	RecipientEmail string `json:"recipientEmail"`
	SurveyTitle    string `json:"surveyTitle"`
}

// SendReport asks the notification service to email the report link to the
// recipient. Transport errors and 5xx responses are retried once; 4xx
// responses fail immediately.
func (m *ReportMailer) SendReport(ctx context.Context, reportURL, recipientEmail, surveyTitle string) (*SendAck, error) {
	body, err := json.Marshal(sendReportRequest{
		ReportURL:      reportURL,
		RecipientEmail: recipientEmail,
		SurveyTitle:    surveyTitle,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/send-report", m.baseURL)

	var lastErr error
	for attempt := 1; attempt <= m.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if m.token != "" {
			req.Header.Set("Authorization", "Bearer "+m.token)
		}

		resp, err := m.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("notification service returned %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode >= 400 {
			return nil, NewUnavailableError(fmt.Sprintf("notification service rejected the request: %d", resp.StatusCode))
		}

		var ack SendAck
		if err := json.Unmarshal(data, &ack); err != nil {
			return nil, NewUnavailableError(fmt.Sprintf("malformed acknowledgement from notification service: %v", err))
		}
		if !ack.Success {
			return &ack, NewUnavailableError(ack.Message)
		}
		return &ack, nil
	}
	return nil, NewUnavailableError(fmt.Sprintf("notification service unreachable: %v", lastErr))
}
