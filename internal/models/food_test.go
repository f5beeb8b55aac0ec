// ABOUTME: Tests for food log totals.
// ABOUTME: Totals must work on accessor return values, not just variables.
package models

import "testing"

func TestDailyFoodLogTotals(t *testing.T) {
	log := DailyFoodLog{
		Date: "2024-01-01",
		Log: []AnalyzedFoodItem{
			{Name: "Oats", Calories: 300, Protein: 10, Carbs: 50, Fats: 6},
			{Name: "Grilled Chicken Breast", Calories: 220, Protein: 40, Carbs: 5, Fats: 8},
		},
	}

	calories, macros := log.Totals()
	if calories != 520 {
		t.Errorf("calories = %v, want 520", calories)
	}
	if macros.Protein != 50 || macros.Carbs != 55 || macros.Fats != 14 {
		t.Errorf("macros = %+v", macros)
	}
}

func TestTotalsCallableOnReturnedValue(t *testing.T) {
	fetch := func() DailyFoodLog {
		return DailyFoodLog{Log: []AnalyzedFoodItem{{Calories: 100}}}
	}

	// Must compile and work without assigning to an addressable variable.
	calories, _ := fetch().Totals()
	if calories != 100 {
		t.Errorf("calories = %v, want 100", calories)
	}
}

func TestTotalsEmptyLog(t *testing.T) {
	calories, macros := DailyFoodLog{}.Totals()
	if calories != 0 || macros != (MacroTotals{}) {
		t.Errorf("empty log totals = %v, %+v", calories, macros)
	}
}
