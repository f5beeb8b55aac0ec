// ABOUTME: Response schemas handed to the Gemini API for structured JSON output.
// ABOUTME: Mirror the model types in internal/models field for field.
package ai

import "google.golang.org/genai"

func workoutPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"planName", "weeklySplit"},
		Properties: map[string]*genai.Schema{
			"planName": {Type: genai.TypeString},
			"weeklySplit": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"day", "muscleGroups", "exercises"},
					Properties: map[string]*genai.Schema{
						"day":          {Type: genai.TypeString},
						"muscleGroups": {Type: genai.TypeString},
						"exercises": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type:     genai.TypeObject,
								Required: []string{"name", "sets", "reps", "rest", "notes"},
								Properties: map[string]*genai.Schema{
									"name":     {Type: genai.TypeString},
									"sets":     {Type: genai.TypeString},
									"reps":     {Type: genai.TypeString},
									"rest":     {Type: genai.TypeString},
									"notes":    {Type: genai.TypeString},
									"imageUrl": {Type: genai.TypeString},
								},
							},
						},
					},
				},
			},
		},
	}
}

func nutritionPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"planTitle", "dailyCalories", "dailyMacros", "sampleDay", "recommendations"},
		Properties: map[string]*genai.Schema{
			"planTitle":     {Type: genai.TypeString},
			"dailyCalories": {Type: genai.TypeString},
			"dailyMacros": {
				Type:     genai.TypeObject,
				Required: []string{"protein", "carbs", "fats"},
				Properties: map[string]*genai.Schema{
					"protein": {Type: genai.TypeString},
					"carbs":   {Type: genai.TypeString},
					"fats":    {Type: genai.TypeString},
				},
			},
			"sampleDay": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"name", "description", "calories"},
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"calories":    {Type: genai.TypeString},
					},
				},
			},
			"recommendations": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
	}
}

func exerciseDatabaseSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"database"},
		Properties: map[string]*genai.Schema{
			"database": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"muscleGroup", "exercises"},
					Properties: map[string]*genai.Schema{
						"muscleGroup": {Type: genai.TypeString},
						"exercises": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type:     genai.TypeObject,
								Required: []string{"name"},
								Properties: map[string]*genai.Schema{
									"name":       {Type: genai.TypeString},
									"imageUrl":   {Type: genai.TypeString},
									"youtubeUrl": {Type: genai.TypeString},
								},
							},
						},
					},
				},
			},
		},
	}
}

func foodAnalysisSchema() *genai.Schema {
	item := &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"name", "calories", "protein", "carbs", "fats", "weightGrams"},
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"calories":    {Type: genai.TypeNumber},
			"protein":     {Type: genai.TypeNumber},
			"carbs":       {Type: genai.TypeNumber},
			"fats":        {Type: genai.TypeNumber},
			"weightGrams": {Type: genai.TypeNumber},
		},
	}
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"totalCalories", "totalMacros", "items", "summary"},
		Properties: map[string]*genai.Schema{
			"totalCalories": {Type: genai.TypeNumber},
			"totalMacros": {
				Type:     genai.TypeObject,
				Required: []string{"protein", "carbs", "fats"},
				Properties: map[string]*genai.Schema{
					"protein": {Type: genai.TypeNumber},
					"carbs":   {Type: genai.TypeNumber},
					"fats":    {Type: genai.TypeNumber},
				},
			},
			"items":   {Type: genai.TypeArray, Items: item},
			"summary": {Type: genai.TypeString},
		},
	}
}

func cardioLibrarySchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"library"},
		Properties: map[string]*genai.Schema{
			"library": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"name", "description", "primaryMetrics"},
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"imageUrl":    {Type: genai.TypeString},
						"primaryMetrics": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString, Enum: []string{"duration", "distance", "calories"}},
						},
					},
				},
			},
		},
	}
}

func foodItemSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"name", "servingSize", "calories"},
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString},
			"servingSize": {Type: genai.TypeString},
			"calories":    {Type: genai.TypeString},
			"protein":     {Type: genai.TypeString},
			"carbs":       {Type: genai.TypeString},
			"fats":        {Type: genai.TypeString},
			"imageUrl":    {Type: genai.TypeString},
		},
	}
}

func foodLibrarySchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"library"},
		Properties: map[string]*genai.Schema{
			"library": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"categoryName", "items"},
					Properties: map[string]*genai.Schema{
						"categoryName": {Type: genai.TypeString},
						"items":        {Type: genai.TypeArray, Items: foodItemSchema()},
					},
				},
			},
		},
	}
}

func foodSearchSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"results"},
		Properties: map[string]*genai.Schema{
			"results": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"categoryName", "item"},
					Properties: map[string]*genai.Schema{
						"categoryName": {Type: genai.TypeString},
						"item":         foodItemSchema(),
					},
				},
			},
		},
	}
}
