// Package insights produces a short natural-language summary of the leave
// data through an OpenAI-compatible chat endpoint. The summary is a
// nice-to-have: any failure degrades to a canned localized message, never
// an error.
package insights

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"smartleave/internal/domain/leave"
)

const (
	fallbackEn = "Unable to generate insights at this time."
	fallbackAr = "تعذر إنشاء الرؤى في الوقت الحالي."
)

type Service struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// New builds the service. An empty apiKey leaves the client nil so every
// summary request takes the fallback path.
func New(apiKey, baseURL, model string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	s := &Service{model: model, logger: logger}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		s.client = openai.NewClientWithConfig(cfg)
	}
	return s
}

type requestTuple struct {
	Employee string `json:"employee"`
	Type     string `json:"type"`
	Days     int    `json:"days"`
	Status   string `json:"status"`
	Date     string `json:"date"`
}

// Summarize returns a localized summary of the request history. lang is
// "ar" or anything else for English.
func (s *Service) Summarize(ctx context.Context, requests []leave.LeaveRequest, users []leave.User, lang string) string {
	if s.client == nil {
		return fallback(lang)
	}

	tuples := make([]requestTuple, 0, len(requests))
	for _, r := range requests {
		tuples = append(tuples, requestTuple{
			Employee: r.UserName,
			Type:     r.TypeID,
			Days:     r.TotalDays,
			Status:   string(r.Status),
			Date:     r.StartDate.String(),
		})
	}
	data, err := json.Marshal(tuples)
	if err != nil {
		s.logger.Warn("encode insight tuples", zap.Error(err))
		return fallback(lang)
	}

	prompt := fmt.Sprintf(
		"You are an HR analyst. Analyze these leave requests for a team of %d employees and provide 3 concise insights about leave patterns, trends, or concerns. Respond in English.\n\nData: %s",
		len(users), data)
	if lang == "ar" {
		prompt = fmt.Sprintf(
			"أنت محلل موارد بشرية. حلل طلبات الإجازة هذه لفريق من %d موظفًا وقدم 3 رؤى موجزة حول أنماط الإجازات أو الاتجاهات أو المخاوف. أجب بالعربية.\n\nالبيانات: %s",
			len(users), data)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.logger.Warn("chat completion failed", zap.Error(err))
		return fallback(lang)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		s.logger.Warn("chat completion returned no content")
		return fallback(lang)
	}
	return resp.Choices[0].Message.Content
}

func fallback(lang string) string {
	if lang == "ar" {
		return fallbackAr
	}
	return fallbackEn
}
