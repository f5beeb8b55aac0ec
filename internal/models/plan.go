// ABOUTME: Workout plan models - weekly split, days, and exercise templates.
// ABOUTME: Plans come from AI generation or manual building; replaced wholesale.
package models

// Exercise is a plan template entry. Name is the unique key within a day and
// is what workout history matching runs on.
type Exercise struct {
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
	Rest     string `json:"rest"`
	Notes    string `json:"notes"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// WorkoutDay is one day of a weekly split.
type WorkoutDay struct {
	Day          string     `json:"day"`
	MuscleGroups string     `json:"muscleGroups"`
	Exercises    []Exercise `json:"exercises"`
}

// WorkoutPlan is a structured weekly workout template.
type WorkoutPlan struct {
	PlanName    string       `json:"planName"`
	WeeklySplit []WorkoutDay `json:"weeklySplit"`
}

// FindDay returns the day with the given label, or nil.
func (p *WorkoutPlan) FindDay(label string) *WorkoutDay {
	for i := range p.WeeklySplit {
		if p.WeeklySplit[i].Day == label {
			return &p.WeeklySplit[i]
		}
	}
	return nil
}

// Meal is a single entry in a nutrition plan's sample day.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    string `json:"calories"`
}

// Macros holds daily macro targets as display strings (e.g. "180g").
type Macros struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

// NutritionPlan is an AI-generated nutrition companion to a workout plan.
type NutritionPlan struct {
	PlanTitle       string   `json:"planTitle"`
	DailyCalories   string   `json:"dailyCalories"`
	DailyMacros     Macros   `json:"dailyMacros"`
	SampleDay       []Meal   `json:"sampleDay"`
	Recommendations []string `json:"recommendations"`
}
