package emotion

// AnalyzeConversation classifies each message and aggregates the results:
// the dominant emotion by message count, the average confidence, and a
// polarity summary. An empty conversation is dominated by Neutral.
func (p *Predictor) AnalyzeConversation(messages []Message) ConversationSummary {
	summary := ConversationSummary{
		Dominant:     Neutral,
		Distribution: make(map[Emotion]int),
		Messages:     make([]MessageAnalysis, 0, len(messages)),
	}

	var totalConfidence float64
	for _, msg := range messages {
		pred := p.Predict(msg.Text)
		summary.Messages = append(summary.Messages, MessageAnalysis{
			Message:    msg,
			Prediction: pred,
		})
		summary.Distribution[pred.Emotion]++
		totalConfidence += pred.Confidence
	}

	summary.Total = len(summary.Messages)
	if summary.Total == 0 {
		return summary
	}
	summary.AverageConfidence = roundPercent(totalConfidence / float64(summary.Total))

	// Dominant emotion by count; ties break toward the canonical order.
	bestCount := -1
	for _, label := range Emotions {
		if count := summary.Distribution[label]; count > bestCount {
			summary.Dominant, bestCount = label, count
		}
	}

	summary.Sentiment = SentimentSummary{
		Positive: bucket(summary.Distribution[Happiness], summary.Total),
		Negative: bucket(summary.Distribution[Anger]+
			summary.Distribution[Sadness]+
			summary.Distribution[Stress], summary.Total),
		Neutral: bucket(summary.Distribution[Neutral], summary.Total),
	}
	return summary
}

func bucket(count, total int) SentimentBucket {
	return SentimentBucket{
		Count:      count,
		Percentage: roundPercent(float64(count) / float64(total) * 100),
	}
}
