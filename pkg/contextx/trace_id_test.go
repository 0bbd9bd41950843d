package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"miles_watch/pkg/contextx"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	testTraceID := contextx.TraceID("cvd92kml3cmg8g2sq1g0")

	ctx = contextx.WithTraceID(ctx, testTraceID)

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.Equal(testTraceID, traceID)
	rq.NoError(err)
	rq.Equal("cvd92kml3cmg8g2sq1g0", traceID.String())
}
