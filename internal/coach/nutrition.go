package coach

import (
	"fmt"
	"strings"
)

const nutritionSystemPrompt = `You are FitMantra's sports nutritionist. Create a practical daily nutrition plan matching the user's goals and dietary preferences. Include meal-by-meal suggestions with approximate calories and macros, and respect any allergies strictly.`

type NutritionPlanRequest struct {
	FitnessGoals       string `json:"fitness_goals"`
	DietaryPreferences string `json:"dietary_preferences"`
	Allergies          string `json:"allergies,omitempty"`
	CurrentWeight      string `json:"current_weight,omitempty"`
	TargetWeight       string `json:"target_weight,omitempty"`
}

type NutritionPlanResponse struct {
	NutritionPlan string `json:"nutrition_plan"`
}

func (r NutritionPlanRequest) validate() error {
	if strings.TrimSpace(r.FitnessGoals) == "" || strings.TrimSpace(r.DietaryPreferences) == "" {
		return ErrMissingFields
	}
	return nil
}

// NutritionPlan generates a daily nutrition plan from the intake form.
func (s *Service) NutritionPlan(req NutritionPlanRequest) (*NutritionPlanResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Fitness goals: %s\n", req.FitnessGoals)
	fmt.Fprintf(&b, "Dietary preferences: %s\n", req.DietaryPreferences)
	if req.Allergies != "" {
		fmt.Fprintf(&b, "Allergies: %s\n", req.Allergies)
	}
	if req.CurrentWeight != "" {
		fmt.Fprintf(&b, "Current weight: %s\n", req.CurrentWeight)
	}
	if req.TargetWeight != "" {
		fmt.Fprintf(&b, "Target weight: %s\n", req.TargetWeight)
	}
	b.WriteString("Please create my daily nutrition plan.")

	plan, err := s.ai.Complete(nutritionSystemPrompt, b.String())
	if err != nil {
		return nil, err
	}
	return &NutritionPlanResponse{NutritionPlan: plan}, nil
}
