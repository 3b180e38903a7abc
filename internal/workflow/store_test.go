//go:build unit

package workflow_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/workflow"
	workflowmock "tripflow/tests/mock/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T) (*workflow.Store, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := workflowmock.NewMockGateway(ctrl)
	clk := clock.NewMockClock(testNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.SessionConfig{TTL: 30 * time.Minute, SweepInterval: time.Minute}
	return workflow.NewStore(cfg, gw, clk, logger), clk
}

func TestStoreResolve(t *testing.T) {
	t.Run("empty id creates a session", func(t *testing.T) {
		store, _ := newStore(t)

		id, controller := store.Resolve("")
		assert.NotEmpty(t, id)
		require.NotNil(t, controller)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("known id returns the same controller", func(t *testing.T) {
		store, _ := newStore(t)

		id, first := store.Resolve("")
		again, second := store.Resolve(id)
		assert.Equal(t, id, again)
		assert.Same(t, first, second)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("unknown id gets a fresh session", func(t *testing.T) {
		store, _ := newStore(t)

		id, _ := store.Resolve("gone-stale")
		assert.NotEqual(t, "gone-stale", id)
	})
}

func TestStoreSweep(t *testing.T) {
	store, clk := newStore(t)

	idleID, _ := store.Resolve("")
	clk.Add(20 * time.Minute)
	activeID, _ := store.Resolve("")
	require.Equal(t, 2, store.Len())

	clk.Add(15 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	// The idle session is gone, the active one survives.
	freshID, _ := store.Resolve(idleID)
	assert.NotEqual(t, idleID, freshID)
	sameID, _ := store.Resolve(activeID)
	assert.Equal(t, activeID, sameID)
}
