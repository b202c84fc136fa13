package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDeleter struct {
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakeDeleter) DeleteUnclaimedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.err
}

func TestRunOnce_UsesMaxAgeCutoff(t *testing.T) {
	deleter := &fakeDeleter{deleted: 3}
	job := NewInviteReaperJob(deleter, &ReaperConfig{MaxAge: 48 * time.Hour}, zap.NewNop())

	err := job.RunOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, deleter.cutoffs, 1)
	expected := time.Now().UTC().Add(-48 * time.Hour)
	assert.WithinDuration(t, expected, deleter.cutoffs[0], time.Minute)
}

func TestRunOnce_PropagatesStoreError(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("connection reset")}
	job := NewInviteReaperJob(deleter, &ReaperConfig{MaxAge: time.Hour}, zap.NewNop())

	err := job.RunOnce(context.Background())

	assert.Error(t, err)
}

func TestStart_DisabledDoesNotSchedule(t *testing.T) {
	deleter := &fakeDeleter{}
	job := NewInviteReaperJob(deleter, &ReaperConfig{Enabled: false, Schedule: "0 3 * * *"}, zap.NewNop())
	defer job.Stop()

	require.NoError(t, job.Start())
	assert.Empty(t, deleter.cutoffs)
}

func TestStart_BadScheduleFails(t *testing.T) {
	job := NewInviteReaperJob(&fakeDeleter{}, &ReaperConfig{Enabled: true, Schedule: "not a cron spec"}, zap.NewNop())
	defer job.Stop()

	assert.Error(t, job.Start())
}
