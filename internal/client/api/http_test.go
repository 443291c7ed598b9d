package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriscan/veriscan-go/internal/common"
	"github.com/veriscan/veriscan-go/internal/logging"
)

type fixedToken string

func (f fixedToken) Token(context.Context) (string, error) { return string(f), nil }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newClientFor(t *testing.T, token string, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL, 5*time.Second, fixedToken(token), discardLogger())
}

func TestLogin_SendsFormCredentials(t *testing.T) {
	var gotContentType, gotUsername, gotPassword string
	c := newClientFor(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotUsername = r.PostFormValue("username")
		gotPassword = r.PostFormValue("password")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-123", "token_type": "bearer"}`))
	})

	token, err := c.Login(context.Background(), "user@example.org", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "user@example.org", gotUsername)
	assert.Equal(t, "pw", gotPassword)
}

func TestRequest_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	c := newClientFor(t, "secret-token", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "u1"}`))
	})

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestRequest_NoBearerWhenTokenEmpty(t *testing.T) {
	var hasAuth bool
	c := newClientFor(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header[common.AuthHeaderName]
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Contact(context.Background(), "n", "e", "m"))
	assert.False(t, hasAuth)
}

func TestDo_UnauthorizedMapsToSentinel(t *testing.T) {
	c := newClientFor(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid authentication credentials"}`))
	})

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
	assert.Equal(t, "Invalid authentication credentials", se.Detail)
}

func TestDo_DecodesDetailMessage(t *testing.T) {
	c := newClientFor(t, "t", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Text cannot be empty"}`))
	})

	_, err := c.DetectText(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "Text cannot be empty", Detail(err, "fallback"))
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestDo_TransportFailureWrapsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // nothing listens any more
	c := NewHTTPClient(ts.URL, time.Second, fixedToken(""), discardLogger())

	_, err := c.Stats(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
	assert.Equal(t, "fallback", Detail(err, "fallback"))
}

func TestDetectImage_MultipartUpload(t *testing.T) {
	var gotField, gotName, gotBody string
	c := newClientFor(t, "t", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotField = "file"
		gotName = header.Filename
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		gotBody = string(data)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "r1", "type": "image", "result": false, "confidence": 0.9}`))
	})

	rec, err := c.DetectImage(context.Background(), "cat.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, "file", gotField)
	assert.Equal(t, "cat.png", gotName)
	assert.Equal(t, "png-bytes", gotBody)
}

func TestResults_PaginationParams(t *testing.T) {
	var gotLimit, gotSkip string
	c := newClientFor(t, "t", func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		gotSkip = r.URL.Query().Get("skip")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	records, err := c.Results(context.Background(), 1000, 20)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "1000", gotLimit)
	assert.Equal(t, "20", gotSkip)
}
