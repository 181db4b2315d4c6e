package saga

import (
	"context"
	"errors"
	"testing"

	"wfh-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func noop(context.Context) error { return nil }

func TestUnwindRunsInReverseOrder(t *testing.T) {
	sg := New("test", zap.NewNop())
	var undone []Step

	require.NoError(t, sg.Run(context.Background(), StepWorkRequest, noop, func(context.Context) error {
		undone = append(undone, StepWorkRequest)
		return nil
	}))
	require.NoError(t, sg.Run(context.Background(), StepSchedule, noop, func(context.Context) error {
		undone = append(undone, StepSchedule)
		return nil
	}))

	cause := errors.New("boom")
	err := sg.Run(context.Background(), StepNotification, func(context.Context) error { return cause }, nil)
	require.ErrorIs(t, err, cause)

	assert.Equal(t, []Step{StepSchedule, StepWorkRequest}, undone)
}

func TestUnwindSkipsNilCompensators(t *testing.T) {
	sg := New("test", zap.NewNop())
	var undone []Step

	require.NoError(t, sg.Run(context.Background(), StepWorkRequest, noop, func(context.Context) error {
		undone = append(undone, StepWorkRequest)
		return nil
	}))
	require.NoError(t, sg.Run(context.Background(), StepSchedule, noop, nil))

	err := sg.Run(context.Background(), StepNotification, func(context.Context) error { return errors.New("boom") }, nil)
	require.Error(t, err)

	assert.Equal(t, []Step{StepWorkRequest}, undone)
}

func TestFailedCompensationOutranksCause(t *testing.T) {
	sg := New("test", zap.NewNop())

	require.NoError(t, sg.Run(context.Background(), StepWorkRequest, noop, func(context.Context) error {
		return errors.New("rollback refused")
	}))

	err := sg.Run(context.Background(), StepSchedule, func(context.Context) error { return errors.New("boom") }, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindCompensationFailed))
	assert.Contains(t, err.Error(), "manual remediation")
}

func TestDetachedFailureDoesNotUnwind(t *testing.T) {
	sg := New("test", zap.NewNop())
	var undone []Step

	require.NoError(t, sg.Run(context.Background(), StepWorkRequest, noop, func(context.Context) error {
		undone = append(undone, StepWorkRequest)
		return nil
	}))

	err := sg.RunDetached(context.Background(), StepNotification, func(context.Context) error {
		return errors.New("broker down")
	})
	require.Error(t, err)
	assert.Empty(t, undone)
}
