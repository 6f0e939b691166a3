package coach

import (
	"fmt"
	"strings"
)

const workoutSystemPrompt = `You are FitMantra's certified personal trainer. Create a structured weekly workout plan tailored to the user's goals, preferences and fitness level. Use clear day-by-day sections with exercises, sets, reps and rest guidance. Keep the plan safe and progressive.`

type WorkoutPlanRequest struct {
	FitnessGoals        string `json:"fitness_goals"`
	WorkoutPreferences  string `json:"workout_preferences"`
	CurrentFitnessLevel string `json:"current_fitness_level"`
	Mood                string `json:"mood,omitempty"`
	LifestyleNotes      string `json:"lifestyle_notes,omitempty"`
}

type WorkoutPlanResponse struct {
	WorkoutPlan string `json:"workout_plan"`
}

func (r WorkoutPlanRequest) validate() error {
	if strings.TrimSpace(r.FitnessGoals) == "" ||
		strings.TrimSpace(r.WorkoutPreferences) == "" ||
		strings.TrimSpace(r.CurrentFitnessLevel) == "" {
		return ErrMissingFields
	}
	return nil
}

// WorkoutPlan generates a weekly workout plan from the intake form.
func (s *Service) WorkoutPlan(req WorkoutPlanRequest) (*WorkoutPlanResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Fitness goals: %s\n", req.FitnessGoals)
	fmt.Fprintf(&b, "Workout preferences: %s\n", req.WorkoutPreferences)
	fmt.Fprintf(&b, "Current fitness level: %s\n", req.CurrentFitnessLevel)
	if req.Mood != "" {
		fmt.Fprintf(&b, "Current mood: %s\n", req.Mood)
	}
	if req.LifestyleNotes != "" {
		fmt.Fprintf(&b, "Lifestyle notes: %s\n", req.LifestyleNotes)
	}
	b.WriteString("Please create my weekly workout plan.")

	plan, err := s.ai.Complete(workoutSystemPrompt, b.String())
	if err != nil {
		return nil, err
	}
	return &WorkoutPlanResponse{WorkoutPlan: plan}, nil
}
