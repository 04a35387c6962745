package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachably/ranking-engine/internal/domain"
)

func TestNotifier_NotifyStandingChanged(t *testing.T) {
	t.Parallel()

	var got notification
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := New(srv.URL, "shh")
	err := n.NotifyStandingChanged(context.Background(), "coach-1", domain.StandingHidden, domain.StandingActive)
	require.NoError(t, err)

	assert.Equal(t, "Bearer shh", gotAuth)
	assert.Equal(t, "standing_changed", got.Type)
	assert.Equal(t, "coach-1", got.CoachID)
	assert.Equal(t, "hidden", got.Payload.FromStanding)
	assert.Equal(t, "active", got.Payload.ToStanding)
	assert.NotEmpty(t, got.SentAt)
}

func TestNotifier_NotifyVisibilityDeclining(t *testing.T) {
	t.Parallel()

	var got notification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := New(srv.URL, "")
	err := n.NotifyVisibilityDeclining(context.Background(), "coach-2", []float64{9, 7, 5, 3})
	require.NoError(t, err)

	assert.Equal(t, "visibility_declining", got.Type)
	assert.Equal(t, []float64{9, 7, 5, 3}, got.Payload.Scores)
}

func TestNotifier_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := New(srv.URL, "")
	err := n.NotifyStandingChanged(context.Background(), "coach-3", domain.StandingActive, domain.StandingWarned)
	assert.ErrorContains(t, err, "status 500")
}
