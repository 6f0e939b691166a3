package coach

import (
	"fmt"
	"strings"
)

const formAnalysisSystemPrompt = `You are FitMantra's movement specialist. The user sends a single video frame of themselves performing an exercise. Assess their form: joint alignment, range of motion and common faults for that movement. Point out what looks good, what to fix, and one cue to focus on next rep. If the frame is too unclear to judge, say so.`

type FormAnalysisRequest struct {
	ExerciseName string `json:"exercise_name"`
	// ImageData is a base64-encoded JPEG frame captured from the camera.
	ImageData string `json:"image_data"`
}

type FormAnalysisResponse struct {
	Analysis string `json:"analysis"`
}

func (r FormAnalysisRequest) validate() error {
	if strings.TrimSpace(r.ExerciseName) == "" || strings.TrimSpace(r.ImageData) == "" {
		return ErrMissingFields
	}
	return nil
}

// FormAnalysis sends one captured frame to the vision model and returns the
// coaching feedback text.
func (s *Service) FormAnalysis(req FormAnalysisRequest) (*FormAnalysisResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("I'm performing: %s. Please analyze my form in this frame.", req.ExerciseName)

	analysis, err := s.ai.CompleteWithImage(formAnalysisSystemPrompt, prompt, req.ImageData)
	if err != nil {
		return nil, err
	}
	return &FormAnalysisResponse{Analysis: analysis}, nil
}
