package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendReport(t *testing.T) {
	var got sendReportRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/send-report", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SendAck{Success: true, Message: "queued"})
	}))
	defer srv.Close()

	mailer := NewReportMailer(srv.URL, "secret")
	ack, err := mailer.SendReport(context.Background(), "http://app/survey/s1/report", "to@example.com", "Feedback")
	require.NoError(t, err)
	require.True(t, ack.Success)
	require.Equal(t, "queued", ack.Message)

	require.Equal(t, "http://app/survey/s1/report", got.ReportURL)
	require.Equal(t, "to@example.com", got.RecipientEmail)
	require.Equal(t, "Feedback", got.SurveyTitle)
}

func TestSendReportRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(SendAck{Success: true, Message: "queued"})
	}))
	defer srv.Close()

	mailer := NewReportMailer(srv.URL, "")
	ack, err := mailer.SendReport(context.Background(), "u", "to@example.com", "t")
	require.NoError(t, err)
	require.True(t, ack.Success)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSendReportClientErrorFailsFast(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	mailer := NewReportMailer(srv.URL, "wrong")
	_, err := mailer.SendReport(context.Background(), "u", "to@example.com", "t")
	requireCode(t, err, ErrorUnavailable)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSendReportRejectedAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SendAck{Success: false, Message: "mailbox full"})
	}))
	defer srv.Close()

	mailer := NewReportMailer(srv.URL, "")
	ack, err := mailer.SendReport(context.Background(), "u", "to@example.com", "t")
	requireCode(t, err, ErrorUnavailable)
	require.NotNil(t, ack)
	require.Equal(t, "mailbox full", ack.Message)
}

func TestSendReportUnreachable(t *testing.T) {
	mailer := NewReportMailer("http://127.0.0.1:1", "")
	_, err := mailer.SendReport(context.Background(), "u", "to@example.com", "t")
	requireCode(t, err, ErrorUnavailable)
}
