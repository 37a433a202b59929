package emotion

// An Emotion is one of the classes the trained model can predict.
type Emotion string

const (
	Happiness Emotion = "happiness"
	Anger     Emotion = "anger"
	Sadness   Emotion = "sadness"
	Stress    Emotion = "stress"
	Neutral   Emotion = "neutral"
)

// Emotions lists every class in its fixed canonical order. Classification
// ties break toward the earlier entry.
var Emotions = []Emotion{Happiness, Anger, Sadness, Stress, Neutral}

// Known reports whether e is one of the five trained classes.
func (e Emotion) Known() bool {
	return e.rank() < len(Emotions)
}

// rank returns e's position in the canonical ordering, or len(Emotions) for
// anything outside the class set.
func (e Emotion) rank() int {
	for i, known := range Emotions {
		if e == known {
			return i
		}
	}
	return len(Emotions)
}

// Intensity tags an emotion's overall polarity.
type Intensity string

const (
	PositiveIntensity Intensity = "positive"
	NegativeIntensity Intensity = "negative"
	NeutralIntensity  Intensity = "neutral"
	UnknownIntensity  Intensity = "unknown"
)

// EmotionDetails holds the static display metadata attached to a class.
type EmotionDetails struct {
	Emoji       string
	Color       string
	Description string
	Intensity   Intensity
}

// A Prediction is the result of classifying a single text.
type Prediction struct {
	Emotion       Emotion             // The winning class.
	Confidence    float64             // The winning class's percentage.
	Probabilities map[Emotion]float64 // Class -> percentage; sums to ~100.
	Details       EmotionDetails      // Display metadata for the winner.
	Text          string              // The original input, unmodified.
	ProcessedText string              // Normalized tokens joined by spaces.
}

// A Message is a single turn in a conversation.
type Message struct {
	Sender string
	Text   string
}

// A MessageAnalysis pairs a conversation turn with its prediction.
type MessageAnalysis struct {
	Message
	Prediction
}

// SentimentBucket counts messages falling into one polarity group.
type SentimentBucket struct {
	Count      int
	Percentage float64
}

// A SentimentSummary groups a conversation's predictions by polarity:
// happiness counts as positive, anger/sadness/stress as negative, and
// neutral as neutral.
type SentimentSummary struct {
	Positive SentimentBucket
	Negative SentimentBucket
	Neutral  SentimentBucket
}

// A ConversationSummary aggregates per-message predictions over a
// conversation.
type ConversationSummary struct {
	Total             int
	Dominant          Emotion
	AverageConfidence float64
	Distribution      map[Emotion]int
	Sentiment         SentimentSummary
	Messages          []MessageAnalysis
}
