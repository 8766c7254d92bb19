package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		failFirst int
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "Should succeed on first attempt",
			policy:    Policy{Attempts: 3},
			failFirst: 0,
			wantCalls: 1,
		},
		{
			name:      "Should retry until success",
			policy:    Policy{Attempts: 3, Delay: time.Millisecond},
			failFirst: 2,
			wantCalls: 3,
		},
		{
			name:      "Should stop after configured attempts",
			policy:    Policy{Attempts: 2, Delay: time.Millisecond},
			failFirst: 5,
			wantCalls: 2,
			wantErr:   true,
		},
		{
			name:      "Should treat zero attempts as one",
			policy:    Policy{},
			failFirst: 1,
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			errBoom := errors.New("boom")

			err := Do(context.Background(), tt.policy, func(ctx context.Context) error {
				calls++
				if calls <= tt.failFirst {
					return errBoom
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errBoom)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDo_AttemptTimeout(t *testing.T) {
	err := Do(context.Background(), Policy{Attempts: 1, Timeout: 10 * time.Millisecond}, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_ContextCancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := Do(ctx, Policy{Attempts: 3, Delay: time.Hour}, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_PermanentErrorStopsRetrying(t *testing.T) {
	errRejected := errors.New("rejected")
	calls := 0

	err := Do(context.Background(), Policy{Attempts: 3, Delay: time.Hour}, func(ctx context.Context) error {
		calls++
		return fmt.Errorf("send: %w", Permanent(errRejected))
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, errRejected)
	assert.True(t, IsPermanent(err))
}

func TestPermanent_Nil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.False(t, IsPermanent(errors.New("boom")))
}
