package coach

import (
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are FitMantra's AI fitness coach. Answer training, recovery and motivation questions in a friendly, concise way. Give actionable advice and recommend consulting a professional for medical concerns.`

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a single coach-chat message, folding prior turns into the
// prompt so the stateless call still reads as a conversation.
func (s *Service) Chat(req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMissingFields
	}

	var b strings.Builder
	for _, turn := range req.History {
		role := turn.Role
		if role != "coach" {
			role = "user"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Content)
	}
	fmt.Fprintf(&b, "user: %s", req.Message)

	reply, err := s.ai.Complete(chatSystemPrompt, b.String())
	if err != nil {
		return nil, err
	}
	return &ChatResponse{Reply: reply}, nil
}
