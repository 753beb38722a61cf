package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationDelay(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expireDate time.Time
		want       int64
	}{
		{name: "future", expireDate: now.Add(time.Minute), want: 61_000},
		{name: "already past", expireDate: now.Add(-time.Hour), want: 0},
		{name: "beyond exchange limit", expireDate: now.Add(90 * 24 * time.Hour), want: maxDelayMs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expirationDelay(tt.expireDate, now))
		})
	}
}

func TestConsumer_CallExpireCouponAPI(t *testing.T) {
	var gotPath, gotAuth string
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := &Consumer{apiURL: srv.URL, apiKey: "internal-key", httpClient: srv.Client()}

	require.NoError(t, c.callExpireCouponAPI(context.Background(), "c-1"))
	assert.Equal(t, "/internal/v1/coupons/c-1/expire", gotPath)
	assert.Equal(t, "Bearer internal-key", gotAuth)

	// not due or already expired: the message is settled
	status = http.StatusConflict
	assert.NoError(t, c.callExpireCouponAPI(context.Background(), "c-1"))

	status = http.StatusInternalServerError
	assert.Error(t, c.callExpireCouponAPI(context.Background(), "c-1"))
}
