package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// UnclaimedSessionDeleter removes invited sessions that were never
// claimed or answered.
type UnclaimedSessionDeleter interface {
	DeleteUnclaimedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ReaperConfig contains configuration for the invite reaper job
type ReaperConfig struct {
	Schedule string        // Cron schedule (e.g., "0 3 * * *" for 3 AM daily)
	Enabled  bool          // Whether to run the reaper
	MaxAge   time.Duration // How long an unclaimed invite may linger
}

// InviteReaperJob deletes recruiter invites that nobody ever joined. The
// interview core itself never deletes sessions; this is maintenance
// around it.
type InviteReaperJob struct {
	sessions UnclaimedSessionDeleter
	config   *ReaperConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewInviteReaperJob(sessions UnclaimedSessionDeleter, config *ReaperConfig, logger *zap.Logger) *InviteReaperJob {
	return &InviteReaperJob{
		sessions: sessions,
		config:   config,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start begins the scheduled reaper job
func (j *InviteReaperJob) Start() error {
	if !j.config.Enabled {
		j.logger.Info("Invite reaper is disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("Invite reaper run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule invite reaper: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Invite reaper started", zap.String("schedule", j.config.Schedule))

	return nil
}

// Stop stops the scheduled reaper job
func (j *InviteReaperJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce performs a single reap pass.
func (j *InviteReaperJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.config.MaxAge)

	deleted, err := j.sessions.DeleteUnclaimedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete unclaimed invites: %w", err)
	}

	if deleted > 0 {
		j.logger.Info("Reaped unclaimed invites", zap.Int64("deleted", deleted))
	}
	return nil
}
