package email

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrevoSenderSend(t *testing.T) {
	var got brevoPayload
	var gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewBrevoSender("test-key", "noreply@example.com")
	sender.Endpoint = server.URL

	err := sender.Send("ops@example.com", "Hazard Assessment Form GEN-1", "<h2>hello</h2>")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "noreply@example.com", got.Sender.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "ops@example.com", got.To[0].Email)
	assert.Equal(t, "Hazard Assessment Form GEN-1", got.Subject)
	assert.Equal(t, "<h2>hello</h2>", got.HTMLContent)
}

func TestBrevoSenderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	sender := NewBrevoSender("bad-key", "noreply@example.com")
	sender.Endpoint = server.URL

	err := sender.Send("ops@example.com", "subject", "<p>body</p>")
	assert.Error(t, err)
}
