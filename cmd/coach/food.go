// ABOUTME: Food commands - photo analysis, library browse/search, and today's log.
// ABOUTME: Search hits merge into the in-memory library without duplicating names.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/models"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Track food and browse nutrition info",
}

var foodAnalyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Estimate nutrition from a meal photo",
	Long: `Analyze a meal photo and add the identified items to today's log.

  $ coach food analyze lunch.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		imageBytes, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("Analyzing photo...")
		result, err := svc.AnalyzeFoodImage(cmd.Context(), imageBytes)
		if err != nil {
			return retryableErr(err)
		}

		fmt.Println(result.Summary)
		for _, item := range result.Items {
			printFoodItem(item)
		}
		fmt.Printf("Total: %.0f kcal (P %.0fg / C %.0fg / F %.0fg)\n",
			result.TotalCalories,
			result.TotalMacros.Protein, result.TotalMacros.Carbs, result.TotalMacros.Fats)

		if err := appStore.AddFoodItems(result.Items); err != nil {
			return err
		}
		color.Green("✓ %d items added to today's log", len(result.Items))
		return nil
	},
}

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show today's food log",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		foodLog := appStore.FoodLog()
		if len(foodLog.Log) == 0 {
			fmt.Println("Nothing logged today.")
			return nil
		}
		for _, item := range foodLog.Log {
			printFoodItem(item)
		}
		calories, macros := foodLog.Totals()
		fmt.Printf("Total: %.0f kcal (P %.0fg / C %.0fg / F %.0fg)\n",
			calories, macros.Protein, macros.Carbs, macros.Fats)
		return nil
	},
}

var foodLibraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the food library by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}

		library, err := foodLibrary(cmd)
		if err != nil {
			return err
		}
		printFoodLibrary(library)
		return nil
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for foods not in the library",
	Long: `Search for foods by name. Hits merge into the library under their
category; items already present by name are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		query := strings.Join(args, " ")

		svc, err := aiService(cmd.Context())
		if err != nil {
			return err
		}
		results, err := svc.SearchFood(cmd.Context(), query)
		if err != nil {
			return retryableErr(err)
		}
		if len(results) == 0 {
			fmt.Printf("No results for %q.\n", query)
			return nil
		}

		appStore.MergeFoodSearchResults(results)
		for _, result := range results {
			fmt.Printf("%s  %s (%s, %s)\n",
				padRight(result.Item.Name, 28), result.CategoryName,
				result.Item.ServingSize, result.Item.Calories)
		}
		return nil
	},
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log a library item by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireLogin(); err != nil {
			return err
		}
		name := strings.Join(args, " ")

		library, err := foodLibrary(cmd)
		if err != nil {
			return err
		}
		for _, category := range library {
			for _, item := range category.Items {
				if strings.EqualFold(item.Name, name) {
					logged := libraryItemToLogged(item)
					if err := appStore.AddFoodItems([]models.AnalyzedFoodItem{logged}); err != nil {
						return err
					}
					color.Green("✓ Logged %s (%.0f kcal)", logged.Name, logged.Calories)
					return nil
				}
			}
		}
		return fmt.Errorf("no library item named %q - try 'coach food search %s'", name, name)
	},
}

func foodLibrary(cmd *cobra.Command) ([]models.FoodCategory, error) {
	svc, err := aiService(cmd.Context())
	if err != nil {
		return nil, err
	}
	library, err := loadResource(appStore.FoodLibrary(), func() ([]models.FoodCategory, error) {
		fmt.Println("Loading food library...")
		return svc.FetchFoodLibrary(cmd.Context())
	})
	if err != nil {
		return nil, retryableErr(err)
	}
	return library, nil
}

func printFoodLibrary(library []models.FoodCategory) {
	for _, category := range library {
		color.New(color.Bold).Println(category.CategoryName)
		for _, item := range category.Items {
			fmt.Printf("  %s  %s, %s\n", padRight(item.Name, 28), item.ServingSize, item.Calories)
		}
	}
}

func printFoodItem(item models.AnalyzedFoodItem) {
	fmt.Printf("  %s  %.0f kcal (P %.0fg / C %.0fg / F %.0fg, %.0fg)\n",
		padRight(item.Name, 28), item.Calories, item.Protein, item.Carbs, item.Fats, item.WeightGrams)
}

// libraryItemToLogged converts a library item's display strings into a logged
// entry. Unparseable values log as zero, same as blank tracker inputs.
func libraryItemToLogged(item models.FoodItem) models.AnalyzedFoodItem {
	return models.AnalyzedFoodItem{
		Name:     item.Name,
		Calories: parseLeadingNumber(item.Calories),
		Protein:  parseLeadingNumber(item.Protein),
		Carbs:    parseLeadingNumber(item.Carbs),
		Fats:     parseLeadingNumber(item.Fats),
	}
}

// parseLeadingNumber extracts the leading numeric part of strings like
// "165 kcal" or "31g".
func parseLeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return value
}

func init() {
	foodCmd.AddCommand(foodAnalyzeCmd)
	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodLibraryCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodAddCmd)
	rootCmd.AddCommand(foodCmd)
}
