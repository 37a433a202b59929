package emotion

import (
	"math"
	"testing"
)

func TestAnalyzeConversation(t *testing.T) {
	p := NewPredictor(testModel(t))
	summary := p.AnalyzeConversation([]Message{
		{Sender: "ana", Text: "I am so happy today!"},
		{Sender: "ben", Text: "not happy at all"},
		{Sender: "ana", Text: "so angry right now"},
	})

	if summary.Total != 3 {
		t.Fatalf("Expected 3 analyzed messages, got %d", summary.Total)
	}
	if len(summary.Messages) != 3 {
		t.Fatalf("Expected 3 message analyses, got %d", len(summary.Messages))
	}

	wantEmotions := []Emotion{Happiness, Sadness, Anger}
	for i, want := range wantEmotions {
		if got := summary.Messages[i].Emotion; got != want {
			t.Errorf("Message %d: expected %s, got %s", i, want, got)
		}
	}

	// One message per class, so the count tie breaks toward happiness.
	if summary.Dominant != Happiness {
		t.Errorf("Expected dominant happiness, got %s", summary.Dominant)
	}
	if summary.Distribution[Happiness] != 1 || summary.Distribution[Sadness] != 1 || summary.Distribution[Anger] != 1 {
		t.Errorf("Unexpected distribution: %v", summary.Distribution)
	}

	if summary.Sentiment.Positive.Count != 1 || summary.Sentiment.Negative.Count != 2 || summary.Sentiment.Neutral.Count != 0 {
		t.Errorf("Unexpected sentiment counts: %+v", summary.Sentiment)
	}
	if math.Abs(summary.Sentiment.Positive.Percentage-33.33) > 0.01 {
		t.Errorf("Expected positive percentage 33.33, got %.2f", summary.Sentiment.Positive.Percentage)
	}
	if math.Abs(summary.Sentiment.Negative.Percentage-66.67) > 0.01 {
		t.Errorf("Expected negative percentage 66.67, got %.2f", summary.Sentiment.Negative.Percentage)
	}

	if summary.AverageConfidence <= 0 || summary.AverageConfidence > 100 {
		t.Errorf("Average confidence out of range: %.2f", summary.AverageConfidence)
	}
}

func TestAnalyzeEmptyConversation(t *testing.T) {
	p := NewPredictor(testModel(t))
	summary := p.AnalyzeConversation(nil)

	if summary.Total != 0 {
		t.Errorf("Expected empty summary, got total %d", summary.Total)
	}
	if summary.Dominant != Neutral {
		t.Errorf("Expected neutral dominant for empty conversation, got %s", summary.Dominant)
	}
	if summary.AverageConfidence != 0 {
		t.Errorf("Expected zero average confidence, got %.2f", summary.AverageConfidence)
	}
}
