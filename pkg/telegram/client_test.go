package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got sendMessageRequest
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("token")
	c.apiURL = srv.URL

	require.NoError(t, c.Send("42", "Standup", "room 4"))
	assert.Equal(t, "/bottoken/sendMessage", path)
	assert.Equal(t, sendMessageRequest{ChatID: "42", Text: "Standup\nroom 4"}, got)
}

func TestClient_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad")
	c.apiURL = srv.URL

	err := c.Send("42", "Standup", "room 4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
