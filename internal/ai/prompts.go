// ABOUTME: Prompt builders for plan generation, libraries, and food analysis.
// ABOUTME: Every prompt demands strict JSON conforming to the matching schema.
package ai

import (
	"fmt"
	"strings"

	"github.com/harperreed/coach/internal/models"
)

func workoutPlanPrompt(p models.Profile) string {
	var b strings.Builder
	b.WriteString("You are an expert fitness coach specializing in scientific, personalized training plans.\n")
	b.WriteString("Create a weekly workout plan for this person:\n\n")
	fmt.Fprintf(&b, "- Gender: %s, Age: %d\n", p.Gender, p.Age)
	fmt.Fprintf(&b, "- Weight: %.1f kg, Height: %.1f cm, Body type: %s\n", p.Weight, p.Height, p.BodyType)
	fmt.Fprintf(&b, "- Experience: %s, Primary goal: %s\n", p.Experience, p.Goal)
	fmt.Fprintf(&b, "- Training days per week: %d\n", p.DaysPerWeek)
	if len(p.SecondaryGoals) > 0 {
		fmt.Fprintf(&b, "- Secondary goals: %s\n", strings.Join(p.SecondaryGoals, ", "))
	}
	if len(p.ProblemAreas) > 0 {
		fmt.Fprintf(&b, "- Problem areas to emphasize: %s\n", strings.Join(p.ProblemAreas, ", "))
	}
	if len(p.Injuries) > 0 {
		fmt.Fprintf(&b, "- Injuries to work around: %s. %s\n", strings.Join(p.Injuries, ", "), p.InjuryDetails)
	}
	if p.ActivityLevel != "" {
		fmt.Fprintf(&b, "- Daily activity level: %s\n", p.ActivityLevel)
	}
	if p.Equipment != "" {
		fmt.Fprintf(&b, "- Available equipment: %s\n", p.Equipment)
	}
	b.WriteString("\nRules:\n")
	fmt.Fprintf(&b, "1. The weekly split must contain exactly %d training days.\n", p.DaysPerWeek)
	b.WriteString("2. Each exercise lists target sets, a rep range, rest duration, and brief form notes.\n")
	b.WriteString("3. Exercise names must be standard English gym terminology so history can match across plans.\n")
	b.WriteString("4. Your entire response must be a valid JSON object strictly conforming to the provided schema.\n")
	return b.String()
}

func nutritionPlanPrompt(p models.Profile, plan models.WorkoutPlan) string {
	var b strings.Builder
	b.WriteString("You are a world-class sports nutritionist. Create a detailed one-day nutrition plan.\n\n")
	fmt.Fprintf(&b, "The person: %s, %d years, %.1f kg, %.1f cm, goal %s, training %d days/week on the %q program.\n",
		p.Gender, p.Age, p.Weight, p.Height, p.Goal, p.DaysPerWeek, plan.PlanName)
	b.WriteString("\nRules:\n")
	b.WriteString("1. Give total daily calories and macro targets matching the training goal.\n")
	b.WriteString("2. Provide a realistic sample day of meals with per-meal calorie estimates.\n")
	b.WriteString("3. Close with a short list of practical recommendations.\n")
	b.WriteString("4. Your entire response must be a valid JSON object conforming to the schema.\n")
	return b.String()
}

const exerciseDatabasePrompt = `You are a strength and conditioning coach and fitness librarian.
Generate a comprehensive exercise database organized by muscle group
(chest, back, shoulders, biceps, triceps, legs, glutes, abs, forearms).
Each entry has a standard English exercise name and, where well known,
an instructional image URL and a YouTube tutorial URL.
The entire response must be a single valid JSON object with the root key "database".`

const foodAnalysisPrompt = `You are a precise nutrition expert. Analyze this meal image.
1. Identify every distinct food item and estimate its weight in grams.
2. Estimate calories, protein, carbs, and fats per item.
3. Sum the totals and write a one-sentence summary of the meal's quality.
4. Your response must be a valid JSON object conforming to the schema.`

const cardioLibraryPrompt = `You are a cardio training expert. Create a library of common cardio
exercises (treadmill, cycling, rowing, swimming, jump rope, stair climber, and similar).
For each, give a short description and which metrics are primary: duration, distance, calories.
The response must be a JSON object with a "library" key.`

const foodLibraryPrompt = `You are an expert on Egyptian cuisine and nutrition. Generate a comprehensive
library of Egyptian and regional foods grouped into categories, each item with a
typical serving size and estimated calories and macros per serving.
The entire response must be a single valid JSON object with the root key "library".`

func foodSearchPrompt(query string) string {
	return fmt.Sprintf(`You are an expert on Egyptian and general nutrition. The user is searching for: %q.
Return matching food items with a typical serving size, estimated calories and macros,
and the library category each belongs under. An empty result list is valid when
nothing matches. Return a valid JSON object strictly conforming to the schema.`, query)
}
