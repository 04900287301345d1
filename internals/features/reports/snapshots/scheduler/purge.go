package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/features/reports/snapshots/service"
)

// Purger is the part of the snapshot service the schedule drives.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// cronLogger routes cron's own messages through the app logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, kv ...interface{}) {
	configs.Log.WithField("component", "cron").Debug(append([]interface{}{msg, " "}, kv...)...)
}

func (cronLogger) Error(err error, msg string, kv ...interface{}) {
	configs.Log.WithField("component", "cron").WithError(err).Error(append([]interface{}{msg, " "}, kv...)...)
}

// RunPurge is one scheduled pass. Errors are logged, never fatal.
func RunPurge(ctx context.Context, p Purger) {
	ctx, cancel := context.WithTimeout(ctx, 4*time.Minute)
	defer cancel()

	n, err := p.Purge(ctx)
	if err != nil {
		configs.Log.WithError(err).Error("[SNAPSHOT-PURGE] delete failed")
		return
	}
	if n == 0 {
		configs.Log.Debug("[SNAPSHOT-PURGE] nothing to delete")
		return
	}
	configs.Log.WithField("deleted", n).Info("[SNAPSHOT-PURGE] expired snapshots removed")
}

// NewPurgeCron registers the purge on a cron schedule. The caller starts and stops it.
func NewPurgeCron(schedule string, p Purger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})), cron.WithLogger(cronLogger{}))
	if _, err := c.AddFunc(schedule, func() { RunPurge(context.Background(), p) }); err != nil {
		return nil, err
	}
	return c, nil
}

// StartSnapshotPurgeCron starts the purge with REPORT_SNAPSHOT_CRON.
func StartSnapshotPurgeCron(db *gorm.DB) (*cron.Cron, error) {
	c, err := NewPurgeCron(configs.SnapshotCleanupCron, service.NewService(db))
	if err != nil {
		return nil, err
	}
	configs.Log.WithField("schedule", configs.SnapshotCleanupCron).
		WithField("ttl_days", configs.SnapshotTTLDays).
		Info("[SNAPSHOT-PURGE] started")
	c.Start()
	return c, nil
}
