package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssistantKeywordRouting(t *testing.T) {
	cases := map[string]int{
		"How much water should I drink?":   0,
		"Was my sleep any good this week?": 1,
		"Did I walk enough today?":         2,
		"What should I eat for dinner?":    3,
		"Is my heart rate normal?":         4,
	}
	for msg, idx := range cases {
		require.Equal(t, assistantResponses[idx], AssistantReply(msg), "message %q", msg)
	}
}

func TestAssistantFallbackIsCanned(t *testing.T) {
	reply := AssistantReply("tell me a joke")
	require.Contains(t, assistantResponses, reply)
}
