package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jlafferty/emotion"
	"github.com/jlafferty/emotion/internal/history"
)

type predictionResponse struct {
	Success          bool               `json:"success"`
	Emotion          string             `json:"emotion"`
	Confidence       float64            `json:"confidence"`
	Emoji            string             `json:"emoji"`
	Color            string             `json:"color"`
	Description      string             `json:"description"`
	Intensity        string             `json:"intensity"`
	AllProbabilities map[string]float64 `json:"all_probabilities"`
	ProcessedText    string             `json:"processed_text"`
	OriginalText     string             `json:"original_text"`
}

func toPredictionResponse(pred emotion.Prediction) predictionResponse {
	probabilities := make(map[string]float64, len(pred.Probabilities))
	for label, pct := range pred.Probabilities {
		probabilities[string(label)] = pct
	}
	return predictionResponse{
		Success:          true,
		Emotion:          string(pred.Emotion),
		Confidence:       pred.Confidence,
		Emoji:            pred.Details.Emoji,
		Color:            pred.Details.Color,
		Description:      pred.Details.Description,
		Intensity:        string(pred.Details.Intensity),
		AllProbabilities: probabilities,
		ProcessedText:    pred.ProcessedText,
		OriginalText:     pred.Text,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	labels := make([]string, 0, len(emotion.Emotions))
	for _, label := range emotion.Emotions {
		labels = append(labels, string(label))
	}
	s.respond(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
		"service":            serviceName,
		"version":            serviceVersion,
		"model_loaded":       true,
		"supported_emotions": labels,
	})
}

func (s *Server) handleEmotions(w http.ResponseWriter, _ *http.Request) {
	details := make(map[string]map[string]string, len(emotion.Emotions))
	for _, label := range emotion.Emotions {
		d := label.Details()
		details[string(label)] = map[string]string{
			"emoji":       d.Emoji,
			"color":       d.Color,
			"description": d.Description,
			"intensity":   string(d.Intensity),
		}
	}
	s.respond(w, http.StatusOK, map[string]any{
		"success":  true,
		"emotions": details,
		"count":    len(details),
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text        string `json:"text"`
		SaveHistory *bool  `json:"save_history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, "No data provided")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		s.fail(w, http.StatusBadRequest, "Text is required")
		return
	}
	if len(text) > s.opts.MaxTextLength {
		s.fail(w, http.StatusBadRequest,
			fmt.Sprintf("Text exceeds maximum length of %d characters", s.opts.MaxTextLength))
		return
	}

	pred := s.predictor.Predict(text)

	if req.SaveHistory == nil || *req.SaveHistory {
		s.history.Add(history.Entry{
			Text:       text,
			Emotion:    string(pred.Emotion),
			Confidence: pred.Confidence,
			Emoji:      pred.Details.Emoji,
		})
	}

	s.respond(w, http.StatusOK, toPredictionResponse(pred))
}

func (s *Server) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts []string `json:"texts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Texts == nil {
		s.fail(w, http.StatusBadRequest, "Texts array is required")
		return
	}
	if len(req.Texts) > s.opts.MaxBatchSize {
		s.fail(w, http.StatusBadRequest,
			fmt.Sprintf("Maximum %d texts allowed per batch", s.opts.MaxBatchSize))
		return
	}

	results := make([]predictionResponse, 0, len(req.Texts))
	for _, pred := range s.predictor.PredictBatch(req.Texts) {
		results = append(results, toPredictionResponse(pred))
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.fail(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries := s.history.Recent(limit)
	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(entries),
		"history": entries,
	})
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, _ *http.Request) {
	s.history.Clear()
	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "History cleared successfully",
	})
}

type analyzedMessage struct {
	Sender     string  `json:"sender"`
	Text       string  `json:"text"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Emoji      string  `json:"emoji"`
}

type sentimentBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []struct {
			Sender string `json:"sender"`
			Text   string `json:"text"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		s.fail(w, http.StatusBadRequest, "Messages array is required")
		return
	}

	messages := make([]emotion.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, emotion.Message{Sender: msg.Sender, Text: msg.Text})
	}
	summary := s.predictor.AnalyzeConversation(messages)

	analyzed := make([]analyzedMessage, 0, len(summary.Messages))
	for _, msg := range summary.Messages {
		analyzed = append(analyzed, analyzedMessage{
			Sender:     msg.Sender,
			Text:       msg.Message.Text,
			Emotion:    string(msg.Emotion),
			Confidence: msg.Confidence,
			Emoji:      msg.Details.Emoji,
		})
	}
	distribution := make(map[string]int, len(summary.Distribution))
	for label, count := range summary.Distribution {
		distribution[string(label)] = count
	}

	s.respond(w, http.StatusOK, map[string]any{
		"success":             true,
		"total_messages":      summary.Total,
		"dominant_emotion":    string(summary.Dominant),
		"dominant_emoji":      summary.Dominant.Details().Emoji,
		"average_confidence":  summary.AverageConfidence,
		"emotion_distribution": distribution,
		"sentiment_summary": map[string]sentimentBucket{
			"positive": {summary.Sentiment.Positive.Count, summary.Sentiment.Positive.Percentage},
			"negative": {summary.Sentiment.Negative.Count, summary.Sentiment.Negative.Percentage},
			"neutral":  {summary.Sentiment.Neutral.Count, summary.Sentiment.Neutral.Percentage},
		},
		"analyzed_messages": analyzed,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.fail(w, http.StatusNotFound, "Endpoint not found")
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, message string) {
	s.respond(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
