package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"surveyforge/internal/model"
)

// ReportCache handles Redis operations for computed survey reports. Reports
// are pure derivations, so a cache miss is never an error: recompute and set.
type ReportCache interface {
	GetReport(ctx context.Context, surveyID string) (*model.ReportData, error)
	SetReport(ctx context.Context, report *model.ReportData) error
	Invalidate(ctx context.Context, surveyID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache with the given TTL.
func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &reportCache{client: client, ttl: ttl}
}

func (c *reportCache) reportKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:report", surveyID)
}

func (c *reportCache) GetReport(ctx context.Context, surveyID string) (*model.ReportData, error) {
	data, err := c.client.Get(ctx, c.reportKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.ReportData
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *reportCache) SetReport(ctx context.Context, report *model.ReportData) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.reportKey(report.SurveyID), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.reportKey(surveyID)).Err()
}
