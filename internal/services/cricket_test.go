package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
)

func TestCricket_DisabledWhenUnconfigured(t *testing.T) {
	svc := NewCricket(&config.Config{})

	_, err := svc.LiveScores(context.Background())
	assert.ErrorIs(t, err, ErrCricketDisabled)
}

func TestCricket_PassesThroughUpstreamJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		w.Write([]byte(`{"matches":[{"id":1}]}`))
	}))
	defer upstream.Close()

	svc := NewCricket(&config.Config{
		CricketAPIEnabled: true,
		CricketAPIBaseURL: upstream.URL,
		CricketAPIKey:     "test-key",
		CricketAPIHost:    "example.rapidapi.com",
	})

	body, err := svc.LiveScores(context.Background())
	assert.NoError(t, err)
	assert.JSONEq(t, `{"matches":[{"id":1}]}`, string(body))
}

func TestCricket_UpstreamErrorMapsToUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewCricket(&config.Config{
		CricketAPIEnabled: true,
		CricketAPIBaseURL: upstream.URL,
		CricketAPIKey:     "test-key",
	})

	_, err := svc.LiveScores(context.Background())
	assert.ErrorIs(t, err, ErrCricketUpstream)
}
