package jobs

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/logger"
)

// ReminderSender delivers the daily appointment digest.
type ReminderSender interface {
	AppointmentDigest(ctx context.Context, day string, lines []string) error
}

// AppointmentReminderJob periodically mails coordinators a digest of
// cases whose appointment date is today. It only reads case state;
// the tracker's flags are never mutated from a background job.
type AppointmentReminderJob struct {
	repo     domainRepos.DisbursementRepository
	sender   ReminderSender
	interval time.Duration
	stop     chan struct{}
}

func NewAppointmentReminderJob(repo domainRepos.DisbursementRepository, sender ReminderSender) *AppointmentReminderJob {
	return &AppointmentReminderJob{
		repo:     repo,
		sender:   sender,
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

func (j *AppointmentReminderJob) Start(ctx context.Context) {
	logger.Info(ctx, "appointment reminder job started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "appointment reminder job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "appointment reminder job stopped")
			return
		case <-ticker.C:
			j.sendDigest(ctx)
		}
	}
}

func (j *AppointmentReminderJob) Stop() {
	close(j.stop)
}

func (j *AppointmentReminderJob) sendDigest(ctx context.Context) {
	day := time.Now().Format("2006-01-02")

	cases, err := j.repo.ListAppointmentsOn(ctx, day)
	if err != nil {
		logger.Error(ctx, "appointment digest query failed", zap.Error(err))
		return
	}
	if len(cases) == 0 {
		return
	}

	lines := make([]string, 0, len(cases))
	for _, c := range cases {
		slot := c.AppointmentTime.String
		if slot == "" {
			slot = "unscheduled"
		}
		lines = append(lines, strings.Join([]string{c.LeadID, c.LeadName, c.BankName, slot}, " | "))
	}

	if err := j.sender.AppointmentDigest(ctx, day, lines); err != nil {
		logger.Error(ctx, "appointment digest send failed", zap.Error(err))
		return
	}
	logger.Info(ctx, "appointment digest sent", zap.Int("cases", len(cases)))
}
