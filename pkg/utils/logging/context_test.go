package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/commitwatch/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	// Verify the logger can be retrieved from the context
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		// Should return default logger, verify it's the same instance when called again
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		// Verify it's actually a logger instance by checking it can be used
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxPassID(t *testing.T) {
	t.Run("get new pass ID from context", func(t *testing.T) {
		ctx := context.Background()

		passID, newCtx := logging.CtxPassID(ctx)
		gt.V(t, passID).NotEqual("")
		// Verify the context contains the pass ID
		retrievedID, _ := logging.CtxPassID(newCtx)
		gt.V(t, retrievedID).Equal(passID)
	})

	t.Run("get existing pass ID from context", func(t *testing.T) {
		ctx := context.Background()

		passID1, ctx1 := logging.CtxPassID(ctx)
		passID2, ctx2 := logging.CtxPassID(ctx1)

		gt.V(t, passID1).Equal(passID2)
		// Verify both contexts return the same pass ID
		retrievedID1, _ := logging.CtxPassID(ctx1)
		retrievedID2, _ := logging.CtxPassID(ctx2)
		gt.V(t, retrievedID1).Equal(passID1)
		gt.V(t, retrievedID2).Equal(passID1)
	})
}
