package app

import "nutritrack/internal/domain"

// seedFoods returns the built-in food catalog. Nutrient densities are per
// unit of the listed unit (grams, milliliters, or pieces).
func seedFoods() []domain.Food {
	return []domain.Food{
		// Grains and cereals
		{ID: "1", Name: "Rice (cooked)", CaloriesPerUnit: 1.3, ProteinPerUnit: 0.03, CarbsPerUnit: 0.28, FatPerUnit: 0.003, Unit: "g"},
		{ID: "2", Name: "Bread (white)", CaloriesPerUnit: 2.65, ProteinPerUnit: 0.09, CarbsPerUnit: 0.49, FatPerUnit: 0.032, Unit: "g"},
		{ID: "3", Name: "Pasta (cooked)", CaloriesPerUnit: 1.31, ProteinPerUnit: 0.05, CarbsPerUnit: 0.25, FatPerUnit: 0.011, Unit: "g"},
		{ID: "4", Name: "Oats", CaloriesPerUnit: 3.89, ProteinPerUnit: 0.17, CarbsPerUnit: 0.66, FatPerUnit: 0.069, Unit: "g"},

		// Proteins
		{ID: "5", Name: "Chicken Breast", CaloriesPerUnit: 1.65, ProteinPerUnit: 0.31, CarbsPerUnit: 0, FatPerUnit: 0.036, Unit: "g"},
		{ID: "6", Name: "Salmon", CaloriesPerUnit: 2.08, ProteinPerUnit: 0.25, CarbsPerUnit: 0, FatPerUnit: 0.12, Unit: "g"},
		{ID: "7", Name: "Eggs", CaloriesPerUnit: 155, ProteinPerUnit: 13, CarbsPerUnit: 1.1, FatPerUnit: 11, Unit: "piece"},
		{ID: "8", Name: "Ground Beef (85% lean)", CaloriesPerUnit: 2.12, ProteinPerUnit: 0.26, CarbsPerUnit: 0, FatPerUnit: 0.11, Unit: "g"},

		// Dairy
		{ID: "9", Name: "Milk (whole)", CaloriesPerUnit: 0.42, ProteinPerUnit: 0.034, CarbsPerUnit: 0.047, FatPerUnit: 0.034, Unit: "ml"},
		{ID: "10", Name: "Greek Yogurt", CaloriesPerUnit: 0.59, ProteinPerUnit: 0.10, CarbsPerUnit: 0.036, FatPerUnit: 0.004, Unit: "g"},
		{ID: "11", Name: "Cheese (cheddar)", CaloriesPerUnit: 4.02, ProteinPerUnit: 0.25, CarbsPerUnit: 0.013, FatPerUnit: 0.33, Unit: "g"},

		// Fruits
		{ID: "12", Name: "Apple", CaloriesPerUnit: 0.52, ProteinPerUnit: 0.003, CarbsPerUnit: 0.14, FatPerUnit: 0.002, Unit: "g"},
		{ID: "13", Name: "Banana", CaloriesPerUnit: 0.89, ProteinPerUnit: 0.011, CarbsPerUnit: 0.23, FatPerUnit: 0.003, Unit: "g"},
		{ID: "14", Name: "Orange", CaloriesPerUnit: 0.47, ProteinPerUnit: 0.009, CarbsPerUnit: 0.12, FatPerUnit: 0.001, Unit: "g"},

		// Vegetables
		{ID: "15", Name: "Broccoli", CaloriesPerUnit: 0.34, ProteinPerUnit: 0.028, CarbsPerUnit: 0.07, FatPerUnit: 0.004, Unit: "g"},
		{ID: "16", Name: "Spinach", CaloriesPerUnit: 0.23, ProteinPerUnit: 0.029, CarbsPerUnit: 0.036, FatPerUnit: 0.004, Unit: "g"},
		{ID: "17", Name: "Carrots", CaloriesPerUnit: 0.41, ProteinPerUnit: 0.009, CarbsPerUnit: 0.096, FatPerUnit: 0.002, Unit: "g"},

		// Nuts and seeds
		{ID: "18", Name: "Almonds", CaloriesPerUnit: 5.79, ProteinPerUnit: 0.21, CarbsPerUnit: 0.22, FatPerUnit: 0.50, Unit: "g"},
		{ID: "19", Name: "Peanut Butter", CaloriesPerUnit: 5.88, ProteinPerUnit: 0.25, CarbsPerUnit: 0.20, FatPerUnit: 0.50, Unit: "g"},

		// Oils and fats
		{ID: "20", Name: "Olive Oil", CaloriesPerUnit: 8.84, ProteinPerUnit: 0, CarbsPerUnit: 0, FatPerUnit: 1.0, Unit: "ml"},
	}
}
