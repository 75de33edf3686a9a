// services/assistant_service.go
package services

import (
	"math/rand"
	"strings"
)

// AssistantGreeting opens every chat session.
const AssistantGreeting = "Hi there! I'm your health AI assistant. Ask me anything about your health data or for personalized recommendations."

// Canned replies standing in for a real inference backend.
var assistantResponses = []string{
	"Based on your recent health data, I recommend increasing your water intake to at least 8 glasses per day.",
	"Your sleep patterns show improvement over the last week. Keep maintaining a consistent sleep schedule.",
	"I notice your step count has decreased. Try to aim for at least 8,000 steps daily for cardiovascular health.",
	"Your nutritional data shows you could benefit from adding more leafy greens to your diet.",
	"Your heart rate readings are within normal range. Keep up the good work with your exercise routine!",
}

// Keyword routing so obvious questions get the matching canned answer.
var assistantTopics = []struct {
	keywords []string
	response int
}{
	{[]string{"water", "hydrat", "drink"}, 0},
	{[]string{"sleep", "bed", "rest"}, 1},
	{[]string{"step", "walk", "cardio"}, 2},
	{[]string{"food", "diet", "nutrition", "eat", "meal"}, 3},
	{[]string{"heart", "bpm", "pulse"}, 4},
}

// AssistantReply picks the canned response matching the message, falling
// back to a random one.
func AssistantReply(message string) string {
	m := strings.ToLower(message)
	for _, t := range assistantTopics {
		for _, kw := range t.keywords {
			if strings.Contains(m, kw) {
				return assistantResponses[t.response]
			}
		}
	}
	return assistantResponses[rand.Intn(len(assistantResponses))]
}
