package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponabinanth/inventory-service/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
		t.Helper()

		var seen string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if incoming != "" {
			req.Header.Set(requestid.Header, incoming)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return seen, rec
	}

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "client-id_42")
		assert.Equal(t, "client-id_42", seen)
		assert.Equal(t, "client-id_42", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces id with invalid characters", func(t *testing.T) {
		t.Parallel()

		seen, _ := serve(t, "bad id\nwith junk")
		assert.NotEqual(t, "bad id\nwith junk", seen)
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})

	t.Run("replaces overlong id", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 200)
		seen, _ := serve(t, long)
		assert.NotEqual(t, long, seen)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(context.Background())
	assert.False(t, ok)
	assert.Empty(t, attr.Key)

	ctx := requestid.WithContext(context.Background(), "abc")
	attr, ok = extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
