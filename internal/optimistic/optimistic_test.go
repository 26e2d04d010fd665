package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
)

func TestRun_Success(t *testing.T) {
	recorder := &notify.Recorder{}
	applied, reverted := false, false

	err := Run(context.Background(), recorder, Op{
		Label:  "adding item",
		Apply:  func() { applied = true },
		Revert: func() { reverted = true },
		Call:   func(ctx context.Context) error { return nil },
	})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.False(t, reverted, "success must not revert")
	assert.Empty(t, recorder.All(), "success must not notify")
}

func TestRun_FailureRevertsAndNotifiesOnce(t *testing.T) {
	recorder := &notify.Recorder{}
	remoteErr := errors.New("connection refused")

	var order []string
	err := Run(context.Background(), recorder, Op{
		Label:  "adding item",
		Apply:  func() { order = append(order, "apply") },
		Revert: func() { order = append(order, "revert") },
		Call: func(ctx context.Context) error {
			order = append(order, "call")
			return remoteErr
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, remoteErr)
	assert.Equal(t, []string{"apply", "call", "revert"}, order)

	notifications := recorder.All()
	require.Len(t, notifications, 1, "exactly one notification per failure")
	assert.Equal(t, notify.LevelError, notifications[0].Level)
	assert.Contains(t, notifications[0].Message, "adding item failed")
}

func TestRun_AppliesBeforeCalling(t *testing.T) {
	recorder := &notify.Recorder{}
	applied := false

	_ = Run(context.Background(), recorder, Op{
		Label: "op",
		Apply: func() { applied = true },
		Call: func(ctx context.Context) error {
			assert.True(t, applied, "local state must reflect the change before the remote call")
			return nil
		},
	})
}

func TestRun_NilApplyAndRevert(t *testing.T) {
	recorder := &notify.Recorder{}

	err := Run(context.Background(), recorder, Op{
		Label: "op",
		Call:  func(ctx context.Context) error { return errors.New("boom") },
	})

	require.Error(t, err)
	assert.Len(t, recorder.All(), 1)
}
