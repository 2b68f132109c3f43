package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0501234567", "972501234567"},
		{"050-123-4567", "972501234567"},
		{"+972501234567", "972501234567"},
		{"972501234567", "972501234567"},
		{"+1 (555) 123-4567", "15551234567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}

func TestBuildWaLink(t *testing.T) {
	link := BuildWaLink("0501234567", "Hello there")
	assert.Equal(t, "https://wa.me/972501234567?text=Hello+there", link)
}

func TestClient_SendText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		var req sendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "whatsapp", req.MessagingProduct)
		assert.Equal(t, "972501234567", req.To)
		assert.Equal(t, "test message", req.Text.Body)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"messages": []map[string]string{{"id": "wamid.test1"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})
	creds := Credentials{PhoneNumberID: "12345", AccessToken: "token-abc"}

	result, err := client.SendText(context.Background(), creds, "0501234567", "test message")
	require.NoError(t, err)
	assert.Equal(t, "wamid.test1", result.MessageID)
	assert.True(t, result.Sent())
}

func TestClient_SendText_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})
	creds := Credentials{PhoneNumberID: "12345", AccessToken: "bad"}

	_, err := client.SendText(context.Background(), creds, "0501234567", "test")
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestClient_SendText_NoCredentials(t *testing.T) {
	client := NewClient("http://unused", 5*time.Second, nopLogger{})

	_, err := client.SendText(context.Background(), Credentials{}, "0501234567", "test")
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestClient_SendWithFallback(t *testing.T) {
	client := NewClient("http://unused", 5*time.Second, nopLogger{})

	result, err := client.SendWithFallback(context.Background(), Credentials{}, "0501234567", "hi")
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Sent())
	assert.Contains(t, result.WaLink, "wa.me/972501234567")
}
