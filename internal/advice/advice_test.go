package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPAdvisorDecodesAdvice(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"safetyTip":"Go slow.","gearRecommendation":"Knee Support","motivationalQuote":"Keep moving!"}`))
	}))
	defer srv.Close()

	advisor := NewHTTPAdvisor(srv.URL+"/", "secret", time.Second)
	out, err := advisor.Advise(context.Background(), Request{Injury: "knee", ActivityLevel: "active", TargetZones: []string{"legs"}})
	require.NoError(t, err)
	require.Equal(t, "Knee Support", out.GearRecommendation)
	require.Equal(t, "knee", got.Injury)
	require.Equal(t, []string{"legs"}, got.TargetZones)
}

func TestHTTPAdvisorNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewHTTPAdvisor(srv.URL, "", time.Second).Advise(context.Background(), Request{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusTooManyRequests, statusErr.Status)
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestHTTPAdvisorMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"safetyTip":`))
	}))
	defer srv.Close()

	_, err := NewHTTPAdvisor(srv.URL, "", time.Second).Advise(context.Background(), Request{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHTTPAdvisorMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"safetyTip":"ok","gearRecommendation":""}`))
	}))
	defer srv.Close()

	_, err := NewHTTPAdvisor(srv.URL, "", time.Second).Advise(context.Background(), Request{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHTTPAdvisorTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPAdvisor(url, "", time.Second).Advise(context.Background(), Request{})
	require.Error(t, err)
}

func TestNoopAdvisorUnavailable(t *testing.T) {
	_, err := NoopAdvisor{}.Advise(context.Background(), Request{})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestStatusErrorPaymentRequired(t *testing.T) {
	err := &StatusError{Status: http.StatusPaymentRequired}
	require.ErrorIs(t, err, ErrCreditsExhausted)
	require.NotErrorIs(t, &StatusError{Status: http.StatusBadGateway}, ErrCreditsExhausted)
}
