package coach

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply     string
	err       error
	system    string
	user      string
	imageData string
}

func (f *fakeCompleter) Complete(system, user string) (string, error) {
	f.system, f.user = system, user
	return f.reply, f.err
}

func (f *fakeCompleter) CompleteWithImage(system, user, imageData string) (string, error) {
	f.system, f.user, f.imageData = system, user, imageData
	return f.reply, f.err
}

func TestWorkoutPlan(t *testing.T) {
	ai := &fakeCompleter{reply: "Day 1: squats"}
	svc := NewService(ai)

	resp, err := svc.WorkoutPlan(WorkoutPlanRequest{
		FitnessGoals:        "build muscle",
		WorkoutPreferences:  "gym, 4 days",
		CurrentFitnessLevel: "intermediate",
		Mood:                "energised",
	})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: squats", resp.WorkoutPlan)

	assert.Contains(t, ai.user, "build muscle")
	assert.Contains(t, ai.user, "gym, 4 days")
	assert.Contains(t, ai.user, "intermediate")
	assert.Contains(t, ai.user, "energised")
	assert.NotEmpty(t, ai.system)
}

func TestWorkoutPlanOptionalFieldsOmitted(t *testing.T) {
	ai := &fakeCompleter{reply: "plan"}
	svc := NewService(ai)

	_, err := svc.WorkoutPlan(WorkoutPlanRequest{
		FitnessGoals:        "endurance",
		WorkoutPreferences:  "running",
		CurrentFitnessLevel: "beginner",
	})
	require.NoError(t, err)
	assert.NotContains(t, ai.user, "mood")
	assert.NotContains(t, ai.user, "Lifestyle")
}

func TestWorkoutPlanMissingFields(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "plan"})

	tests := []WorkoutPlanRequest{
		{WorkoutPreferences: "gym", CurrentFitnessLevel: "beginner"},
		{FitnessGoals: "strength", CurrentFitnessLevel: "beginner"},
		{FitnessGoals: "strength", WorkoutPreferences: "gym"},
		{FitnessGoals: "   ", WorkoutPreferences: "gym", CurrentFitnessLevel: "beginner"},
	}
	for _, req := range tests {
		_, err := svc.WorkoutPlan(req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestNutritionPlan(t *testing.T) {
	ai := &fakeCompleter{reply: "Breakfast: oats"}
	svc := NewService(ai)

	resp, err := svc.NutritionPlan(NutritionPlanRequest{
		FitnessGoals:       "cut fat",
		DietaryPreferences: "vegetarian",
		Allergies:          "peanuts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Breakfast: oats", resp.NutritionPlan)
	assert.Contains(t, ai.user, "vegetarian")
	assert.Contains(t, ai.user, "peanuts")
}

func TestNutritionPlanMissingFields(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "plan"})

	_, err := svc.NutritionPlan(NutritionPlanRequest{DietaryPreferences: "vegan"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.NutritionPlan(NutritionPlanRequest{FitnessGoals: "bulk"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestChatFoldsHistoryIntoPrompt(t *testing.T) {
	ai := &fakeCompleter{reply: "Rest 48 hours between sessions."}
	svc := NewService(ai)

	resp, err := svc.Chat(ChatRequest{
		Message: "How often should I train legs?",
		History: []ChatTurn{
			{Role: "user", Content: "I started squatting last week."},
			{Role: "coach", Content: "Great, how does it feel?"},
			{Role: "weird", Content: "Sore but good."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rest 48 hours between sessions.", resp.Reply)

	assert.Contains(t, ai.user, "user: I started squatting last week.")
	assert.Contains(t, ai.user, "coach: Great, how does it feel?")
	// unknown roles collapse to user
	assert.Contains(t, ai.user, "user: Sore but good.")
	assert.Contains(t, ai.user, "user: How often should I train legs?")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "hi"})
	_, err := svc.Chat(ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestFormAnalysisUsesVisionPath(t *testing.T) {
	ai := &fakeCompleter{reply: "Keep your chest up."}
	svc := NewService(ai)

	resp, err := svc.FormAnalysis(FormAnalysisRequest{
		ExerciseName: "barbell squat",
		ImageData:    "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep your chest up.", resp.Analysis)
	assert.Equal(t, "aGVsbG8=", ai.imageData)
	assert.Contains(t, ai.user, "barbell squat")
}

func TestFormAnalysisMissingFields(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "x"})

	_, err := svc.FormAnalysis(FormAnalysisRequest{ExerciseName: "squat"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.FormAnalysis(FormAnalysisRequest{ImageData: "aGVsbG8="})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestFlowsPropagateCompleterErrors(t *testing.T) {
	boom := errors.New("provider down")
	svc := NewService(&fakeCompleter{err: boom})

	_, err := svc.WorkoutPlan(WorkoutPlanRequest{
		FitnessGoals: "a", WorkoutPreferences: "b", CurrentFitnessLevel: "c",
	})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Chat(ChatRequest{Message: "hello"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.FormAnalysis(FormAnalysisRequest{ExerciseName: "squat", ImageData: "x"})
	assert.ErrorIs(t, err, boom)
}
