package emotion

// Details returns the static display metadata for an emotion. The switch is
// exhaustive over the class set; anything else gets the unknown placeholder
// so a surprising label degrades the display instead of failing the request.
func (e Emotion) Details() EmotionDetails {
	switch e {
	case Happiness:
		return EmotionDetails{
			Emoji:       "😊",
			Color:       "#FFD700",
			Description: "Joyful, content, or pleased feeling",
			Intensity:   PositiveIntensity,
		}
	case Anger:
		return EmotionDetails{
			Emoji:       "😠",
			Color:       "#DC143C",
			Description: "Irritated, frustrated, or furious feeling",
			Intensity:   NegativeIntensity,
		}
	case Sadness:
		return EmotionDetails{
			Emoji:       "😢",
			Color:       "#4169E1",
			Description: "Unhappy, sorrowful, or depressed feeling",
			Intensity:   NegativeIntensity,
		}
	case Stress:
		return EmotionDetails{
			Emoji:       "😰",
			Color:       "#FF8C00",
			Description: "Anxious, overwhelmed, or tense feeling",
			Intensity:   NegativeIntensity,
		}
	case Neutral:
		return EmotionDetails{
			Emoji:       "😐",
			Color:       "#808080",
			Description: "No strong emotion detected",
			Intensity:   NeutralIntensity,
		}
	default:
		return EmotionDetails{
			Emoji:       "❓",
			Color:       "#000000",
			Description: "Unknown emotion",
			Intensity:   UnknownIntensity,
		}
	}
}
