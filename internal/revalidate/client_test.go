package revalidate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Trigger(t *testing.T) {
	var got triggerRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(triggerResponse{Revalidated: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, "shared-secret")
	err := client.Trigger(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, "shared-secret", got.Secret)
}

func TestClient_TriggerNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "wrong")
	err := client.Trigger(context.TODO())
	assert.Error(t, err)
}

func TestClient_TriggerWithoutEndpoint(t *testing.T) {
	client := NewClient("", "secret")
	assert.NoError(t, client.Trigger(context.TODO()))
}
