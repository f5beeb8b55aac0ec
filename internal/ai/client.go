// ABOUTME: Gemini-backed implementation of the generative service boundary.
// ABOUTME: Fire-once request/response calls, no retries; failures wrap into GenerationError.
package ai

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/harperreed/coach/internal/models"
	"google.golang.org/genai"
)

const (
	// planModel handles the heavyweight structured generations.
	planModel = "gemini-2.5-pro"
	// fastModel handles vision analysis, search, and small libraries.
	fastModel = "gemini-2.5-flash"
)

// Service is the opaque generative boundary the rest of the app consumes.
// Every call is a single request/response with no retry; the caller surfaces
// failures and resets its own state to allow a manual retry.
type Service interface {
	GenerateWorkoutPlan(ctx context.Context, profile models.Profile) (*models.WorkoutPlan, error)
	GenerateNutritionPlan(ctx context.Context, profile models.Profile, plan models.WorkoutPlan) (*models.NutritionPlan, error)
	FetchExerciseDatabase(ctx context.Context) ([]models.ExerciseCategory, error)
	AnalyzeFoodImage(ctx context.Context, imageBytes []byte) (*models.FoodAnalysisResult, error)
	FetchCardioLibrary(ctx context.Context) ([]models.CardioExercise, error)
	FetchFoodLibrary(ctx context.Context) ([]models.FoodCategory, error)
	SearchFood(ctx context.Context, query string) ([]models.FoodSearchResult, error)
}

// Client talks to the Gemini API.
type Client struct {
	genai *genai.Client
}

// APIKey resolves the Gemini API key from the environment.
func APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// NewClient creates a Gemini-backed Service. The API key must be set.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{genai: c}, nil
}

func (c *Client) GenerateWorkoutPlan(ctx context.Context, profile models.Profile) (*models.WorkoutPlan, error) {
	data, err := c.generateJSON(ctx, planModel, genai.Text(workoutPlanPrompt(profile)), workoutPlanSchema())
	if err != nil {
		return nil, genErr("generate workout plan", err)
	}
	return parseWorkoutPlan(data)
}

func (c *Client) GenerateNutritionPlan(ctx context.Context, profile models.Profile, plan models.WorkoutPlan) (*models.NutritionPlan, error) {
	data, err := c.generateJSON(ctx, planModel, genai.Text(nutritionPlanPrompt(profile, plan)), nutritionPlanSchema())
	if err != nil {
		return nil, genErr("generate nutrition plan", err)
	}
	return parseNutritionPlan(data)
}

func (c *Client) FetchExerciseDatabase(ctx context.Context) ([]models.ExerciseCategory, error) {
	data, err := c.generateJSON(ctx, planModel, genai.Text(exerciseDatabasePrompt), exerciseDatabaseSchema())
	if err != nil {
		return nil, genErr("fetch exercise database", err)
	}
	return parseExerciseDatabase(data)
}

func (c *Client) AnalyzeFoodImage(ctx context.Context, imageBytes []byte) (*models.FoodAnalysisResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageBytes, "image/jpeg"),
			genai.NewPartFromText(foodAnalysisPrompt),
		}, genai.RoleUser),
	}
	data, err := c.generateJSON(ctx, fastModel, contents, foodAnalysisSchema())
	if err != nil {
		return nil, genErr("analyze food image", err)
	}
	return parseFoodAnalysis(data)
}

func (c *Client) FetchCardioLibrary(ctx context.Context) ([]models.CardioExercise, error) {
	data, err := c.generateJSON(ctx, fastModel, genai.Text(cardioLibraryPrompt), cardioLibrarySchema())
	if err != nil {
		return nil, genErr("fetch cardio library", err)
	}
	return parseCardioLibrary(data)
}

func (c *Client) FetchFoodLibrary(ctx context.Context) ([]models.FoodCategory, error) {
	data, err := c.generateJSON(ctx, planModel, genai.Text(foodLibraryPrompt), foodLibrarySchema())
	if err != nil {
		return nil, genErr("fetch food library", err)
	}
	return parseFoodLibrary(data)
}

func (c *Client) SearchFood(ctx context.Context, query string) ([]models.FoodSearchResult, error) {
	data, err := c.generateJSON(ctx, fastModel, genai.Text(foodSearchPrompt(query)), foodSearchSchema())
	if err != nil {
		return nil, genErr("search food", err)
	}
	return parseFoodSearch(data)
}

// generateJSON runs one structured-output generation and returns the raw
// JSON text of the response.
func (c *Client) generateJSON(ctx context.Context, model string, contents []*genai.Content, schema *genai.Schema) ([]byte, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, errors.New("empty response")
	}
	return []byte(text), nil
}
