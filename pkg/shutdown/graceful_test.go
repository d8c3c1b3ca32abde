package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

type stopper struct {
	err      error
	called   bool
	deadline bool
}

func (s *stopper) Shutdown(ctx context.Context) error {
	s.called = true
	_, s.deadline = ctx.Deadline()
	return s.err
}

func TestGraceful(t *testing.T) {
	t.Run(`stops every target once the context ends`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		a, b := &stopper{}, &stopper{}
		err := Graceful(ctx, []os.Signal{syscall.SIGUSR1}, time.Second, logging.NewNop(), a, b)
		require.NoError(t, err)
		require.True(t, a.called)
		require.True(t, b.called)
		require.True(t, a.deadline)
	})

	t.Run(`joins shutdown errors`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		boom := errors.New("boom")
		a, b := &stopper{err: boom}, &stopper{}
		err := Graceful(ctx, []os.Signal{syscall.SIGUSR1}, time.Second, logging.NewNop(), a, b)
		require.ErrorIs(t, err, boom)
		require.True(t, b.called)
	})
}
