package pressroom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBatch(t *testing.T) {
	var received SubmitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(SubmitResponse{RunRef: "run-1", Status: RunStatusQueued})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, FacilityID: "fac1", APISecret: "secret"})
	resp, err := c.SubmitBatch(context.Background(), "GB-20260901-001", "business-card", "100lb-text", 10000)
	require.NoError(t, err)

	assert.Equal(t, "fac1", received.FacilityID)
	assert.Equal(t, 10000, received.Quantity)
	assert.NotEmpty(t, received.Sign)
	assert.Equal(t, "run-1", resp.RunRef)
	assert.True(t, resp.Ok())
}

func TestSignDeterministic(t *testing.T) {
	c := NewClient(Config{FacilityID: "fac1", APISecret: "secret"})
	other := NewClient(Config{FacilityID: "fac1", APISecret: "other"})

	assert.Equal(t, c.sign("GB-1"), c.sign("GB-1"))
	assert.NotEqual(t, c.sign("GB-1"), c.sign("GB-2"))
	assert.NotEqual(t, c.sign("GB-1"), other.sign("GB-1"))
}

func TestGetRunStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/runs/status", r.URL.Path)
		json.NewEncoder(w).Encode(StatusResponse{RunRef: "run-1", Status: RunStatusPrinting})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, FacilityID: "fac1", APISecret: "secret"})
	resp, err := c.GetRunStatus(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, RunStatusPrinting, resp.Status)
}
