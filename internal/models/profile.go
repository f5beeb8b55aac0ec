// ABOUTME: User onboarding profile used as input to plan generation.
// ABOUTME: Validates realistic bounds before anything reaches the AI boundary.
package models

import "fmt"

// Profile holds the attributes collected at onboarding. It is the sole
// input to workout plan generation.
type Profile struct {
	Gender         string   `json:"gender"`     // male, female
	Age            int      `json:"age"`
	Weight         float64  `json:"weight"`     // kg
	Height         float64  `json:"height"`     // cm
	Experience     string   `json:"experience"` // beginner, intermediate, advanced
	Goal           string   `json:"goal"`       // muscle_gain, fat_loss, strength_gain, general_fitness, body_recomposition
	DaysPerWeek    int      `json:"daysPerWeek"`
	BodyType       string   `json:"bodyType"` // ectomorph, mesomorph, endomorph
	SecondaryGoals []string `json:"secondaryGoals,omitempty"`
	ProblemAreas   []string `json:"problemAreas,omitempty"`
	Injuries       []string `json:"injuries,omitempty"`
	InjuryDetails  string   `json:"injuryDetails,omitempty"`
	ActivityLevel  string   `json:"activityLevel,omitempty"`
	Equipment      string   `json:"equipment,omitempty"` // full_gym, home_gym, bodyweight
}

// Validate checks numeric fields against realistic bounds. Invalid profiles
// never reach the session store or the AI boundary.
func (p *Profile) Validate() error {
	if p.Age < 13 || p.Age > 100 {
		return fmt.Errorf("age %d out of range (13-100)", p.Age)
	}
	if p.Weight < 30 || p.Weight > 300 {
		return fmt.Errorf("weight %.1f kg out of range (30-300)", p.Weight)
	}
	if p.Height < 100 || p.Height > 250 {
		return fmt.Errorf("height %.1f cm out of range (100-250)", p.Height)
	}
	if p.DaysPerWeek < 3 || p.DaysPerWeek > 5 {
		return fmt.Errorf("days per week %d out of range (3-5)", p.DaysPerWeek)
	}
	return nil
}
