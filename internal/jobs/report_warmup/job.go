package report_warmup

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

// Job ночной прогрев кэша отчётов за окно по умолчанию
// (с первого числа месяца по сегодня) для всех организаций с бронированиями
type Job struct {
	orgs         OrgLister
	reports      ReportRefresher
	timeProvider TimeProvider
	timeout      time.Duration
	logger       Logger
}

// NewJob создает задачу прогрева
func NewJob(orgs OrgLister, reports ReportRefresher, timeout time.Duration, logger Logger) *Job {
	return &Job{
		orgs:         orgs,
		reports:      reports,
		timeProvider: &RealTimeProvider{},
		timeout:      timeout,
		logger:       logger,
	}
}

// Register добавляет задачу в планировщик по cron-выражению
func (j *Job) Register(c *cron.Cron, schedule string) (cron.EntryID, error) {
	id, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("ReportWarmup: run failed: %v", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("report warmup: invalid schedule %q: %w", schedule, err)
	}
	return id, nil
}

// Run выполняет один проход прогрева и возвращает число обновлённых организаций.
// Ошибка по одной организации не останавливает остальные.
func (j *Job) Run(ctx context.Context) (int, error) {
	start, end := domain.DefaultReportWindow(types.NewDate(j.timeProvider.Now()))

	orgIDs, err := j.orgs.GetOrgIDsWithBookings(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("list organisations: %w", err)
	}

	refreshed := 0
	for _, orgID := range orgIDs {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if _, err := j.reports.Refresh(ctx, orgID, start, end); err != nil {
			j.logger.Warn("ReportWarmup: org=%d failed: %v", orgID, err)
			continue
		}
		refreshed++
	}

	j.logger.Info("ReportWarmup: refreshed %d/%d organisations for %s..%s", refreshed, len(orgIDs), start, end)
	return refreshed, nil
}
