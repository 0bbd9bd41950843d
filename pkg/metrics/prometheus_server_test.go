package metrics_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"miles_watch/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
	}{
		{
			name:          "Metrics handler",
			listenAddress: ":10010",
			endpoint:      "http://:10010/metrics",
			statusCode:    http.StatusOK,
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10020",
			endpoint:      "http://:10020/invalid",
			statusCode:    http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			g, ctx := errgroup.WithContext(ctx)

			server := metrics.NewPrometheusServer(tc.listenAddress)

			g.Go(func() error {
				return server.Run(ctx)
			})

			resp := waitGet(rq, tc.endpoint)
			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			cancel()
			rq.NoError(g.Wait())
		})
	}
}

func waitGet(rq *require.Assertions, endpoint string) *http.Response {
	var (
		resp *http.Response
		err  error
	)

	for range 50 {
		resp, err = http.Get(endpoint) //nolint:gosec,noctx // test endpoint
		if err == nil {
			return resp
		}

		time.Sleep(20 * time.Millisecond)
	}

	rq.NoError(err)

	return resp
}
