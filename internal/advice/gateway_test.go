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

func TestGatewayAdvisorParsesFencedContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		resp := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{
					"role":    "assistant",
					"content": "```json\n{\"safetyTip\":\"Keep knees soft.\",\"gearRecommendation\":\"Yoga Block\",\"motivationalQuote\":\"One rep at a time.\"}\n```",
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	advisor := NewGatewayAdvisor(GatewayConfig{URL: srv.URL, APIKey: "key", Model: "test-model", Timeout: time.Second})
	out, err := advisor.Advise(context.Background(), Request{Injury: "knee", ActivityLevel: "sedentary"})
	require.NoError(t, err)
	require.Equal(t, "Yoga Block", out.GearRecommendation)

	require.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "system", got.Messages[0].Role)
	require.Contains(t, got.Messages[1].Content, "- Injury/Constraint: knee")
	require.Contains(t, got.Messages[1].Content, "- Target Zones: Full body")
}

func TestGatewayAdvisorNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewGatewayAdvisor(GatewayConfig{URL: srv.URL, Timeout: time.Second}).Advise(context.Background(), Request{})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestGatewayAdvisorPaymentRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no credits", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	_, err := NewGatewayAdvisor(GatewayConfig{URL: srv.URL, Timeout: time.Second}).Advise(context.Background(), Request{})
	require.ErrorIs(t, err, ErrCreditsExhausted)
}

func TestStripCodeFence(t *testing.T) {
	require.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, StripCodeFence(`{"a":1}`))
}

func TestUserPromptDefaults(t *testing.T) {
	prompt := UserPrompt(Request{TargetZones: []string{"back", "core"}})
	require.Contains(t, prompt, "- Injury/Constraint: None")
	require.Contains(t, prompt, "- Activity Level: Not specified")
	require.Contains(t, prompt, "- Target Zones: back, core")
}
