// ABOUTME: Food tracking models - analyzed items, daily log, and the food library.
// ABOUTME: The daily log is calendar-scoped and resets on date rollover.
package models

// AnalyzedFoodItem is one food item with estimated nutrition, produced by
// image analysis or picked from the food library. Items carry no identity;
// duplicate names are legal, each addition is a new entry.
type AnalyzedFoodItem struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	WeightGrams float64 `json:"weightGrams"`
}

// FoodAnalysisResult is the full response from analyzing a meal photo.
type FoodAnalysisResult struct {
	TotalCalories float64            `json:"totalCalories"`
	TotalMacros   MacroTotals        `json:"totalMacros"`
	Items         []AnalyzedFoodItem `json:"items"`
	Summary       string             `json:"summary"`
}

// MacroTotals holds summed macros in grams.
type MacroTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// DailyFoodLog is the single persisted food record per user. Date is a
// calendar-date string (YYYY-MM-DD); a stale date discards the whole log.
type DailyFoodLog struct {
	Date string             `json:"date"`
	Log  []AnalyzedFoodItem `json:"log"`
}

// Totals sums calories and macros across the log.
func (d DailyFoodLog) Totals() (calories float64, macros MacroTotals) {
	for _, item := range d.Log {
		calories += item.Calories
		macros.Protein += item.Protein
		macros.Carbs += item.Carbs
		macros.Fats += item.Fats
	}
	return calories, macros
}

// FoodItem is a library entry with serving-size nutrition as display strings.
type FoodItem struct {
	Name        string `json:"name"`
	ServingSize string `json:"servingSize"`
	Calories    string `json:"calories"`
	Protein     string `json:"protein,omitempty"`
	Carbs       string `json:"carbs,omitempty"`
	Fats        string `json:"fats,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// FoodCategory groups library items by category name.
type FoodCategory struct {
	CategoryName string     `json:"categoryName"`
	Items        []FoodItem `json:"items"`
}

// FoodSearchResult is one search hit with the category it belongs under.
type FoodSearchResult struct {
	CategoryName string   `json:"categoryName"`
	Item         FoodItem `json:"item"`
}
