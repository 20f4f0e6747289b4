package coach

import (
	"context"
	"fmt"
	"strings"

	"bloom/core/cycle"
	"bloom/feature/journal"

	"go.uber.org/zap"
)

// NotConfiguredReply is returned when no API key is set. The endpoint stays
// reachable so the client UI doesn't need a separate capability probe.
const NotConfiguredReply = "The coach is not configured. Set an API key to enable chat."

// historyLimit bounds how many prior turns are forwarded per request.
const historyLimit = 20

// ChatRequest is one user chat turn with its prior conversation.
type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
}

// ChatReply is the coach's answer.
type ChatReply struct {
	// Reply is the model's (or the fallback) answer text.
	Reply string `json:"reply"`
	// Phase is the cycle phase the reply was seeded with.
	Phase cycle.PhaseInfo `json:"phase"`
	// Configured is false when the reply is the not-configured fallback.
	Configured bool `json:"configured"`
}

// Service runs phase-aware coach conversations.
type Service struct {
	journal   *journal.Service
	generator Generator
	logger    *zap.Logger
}

// NewService creates the coach service. A nil generator puts the service in
// fallback mode.
func NewService(j *journal.Service, generator Generator, logger *zap.Logger) *Service {
	return &Service{journal: j, generator: generator, logger: logger}
}

// Chat answers one turn. The system instruction carries today's derived
// cycle phase so the model can tailor training and nutrition advice.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	phase, err := s.journal.PhaseToday(ctx)
	if err != nil {
		return nil, err
	}

	if s.generator == nil {
		return &ChatReply{Reply: NotConfiguredReply, Phase: phase, Configured: false}, nil
	}

	history := req.History
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	messages := append(append([]Message{}, history...), Message{Role: "user", Text: message})

	reply, err := s.generator.Generate(ctx, systemPrompt(phase), messages)
	if err != nil {
		s.logger.Error("Coach generation failed", zap.Error(err))
		return nil, err
	}

	return &ChatReply{Reply: reply, Phase: phase, Configured: true}, nil
}

func systemPrompt(phase cycle.PhaseInfo) string {
	var b strings.Builder
	b.WriteString("You are a supportive wellness coach for a cycle-aware fitness app. ")
	b.WriteString("Give practical, encouraging advice on training, nutrition and recovery. ")
	b.WriteString("You are not a medical professional; suggest seeing a doctor for medical concerns.\n")
	if phase.Phase == cycle.PhaseUnknown {
		b.WriteString("The user's current cycle phase is unknown.")
	} else {
		fmt.Fprintf(&b, "The user is on day %d of their cycle, in the %s phase.", phase.DayOfCycle, phase.Phase)
	}
	return b.String()
}
