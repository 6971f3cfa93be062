package services

import "github.com/Massiue/HealthyMealPlanner/models"

// seedMeals is the built-in starter catalog. It is immutable for the process
// lifetime; admin edits and deletions of these meals are recorded in the
// SeedMealStatus overlay instead.
var seedMeals = []models.Meal{
	{ID: "seed-oats-berries", Source: models.SourceSeed, Name: "Oatmeal with Berries", Type: models.Breakfast, Calories: 320, Protein: 12, DietTag: "Vegetarian", ImageURL: "https://images.unsplash.com/photo-1517673400267-0251440c45dc?w=500"},
	{ID: "seed-masala-omelette", Source: models.SourceSeed, Name: "Masala Omelette", Type: models.Breakfast, Calories: 280, Protein: 18, DietTag: "Non-Veg", ImageURL: "https://images.unsplash.com/photo-1510693206972-df098062cb71?w=500"},
	{ID: "seed-avocado-toast", Source: models.SourceSeed, Name: "Avocado Toast", Type: models.Breakfast, Calories: 350, Protein: 10, DietTag: "Vegan", ImageURL: "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=500"},
	{ID: "seed-greek-parfait", Source: models.SourceSeed, Name: "Greek Yogurt Parfait", Type: models.Breakfast, Calories: 300, Protein: 20, DietTag: "High Protein", ImageURL: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=500"},
	{ID: "seed-chicken-salad", Source: models.SourceSeed, Name: "Grilled Chicken Salad", Type: models.Lunch, Calories: 450, Protein: 40, DietTag: "High Protein", ImageURL: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=500"},
	{ID: "seed-paneer-bowl", Source: models.SourceSeed, Name: "Paneer Tikka Bowl", Type: models.Lunch, Calories: 520, Protein: 28, DietTag: "Vegetarian", ImageURL: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=500"},
	{ID: "seed-quinoa-bowl", Source: models.SourceSeed, Name: "Quinoa Buddha Bowl", Type: models.Lunch, Calories: 480, Protein: 16, DietTag: "Vegan", ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500"},
	{ID: "seed-dal-rice", Source: models.SourceSeed, Name: "Dal Tadka with Rice", Type: models.Lunch, Calories: 550, Protein: 18, DietTag: "Vegetarian", ImageURL: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=500"},
	{ID: "seed-baked-salmon", Source: models.SourceSeed, Name: "Baked Salmon with Veggies", Type: models.Dinner, Calories: 500, Protein: 38, DietTag: "Non-Veg", ImageURL: "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=500"},
	{ID: "seed-tofu-stirfry", Source: models.SourceSeed, Name: "Tofu Vegetable Stir Fry", Type: models.Dinner, Calories: 420, Protein: 22, DietTag: "Vegan", ImageURL: "https://images.unsplash.com/photo-1546554137-f86b9593a222?w=500"},
	{ID: "seed-chicken-sweetpotato", Source: models.SourceSeed, Name: "Chicken Breast with Sweet Potato", Type: models.Dinner, Calories: 560, Protein: 45, DietTag: "High Protein", ImageURL: "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=500"},
	{ID: "seed-palak-paneer", Source: models.SourceSeed, Name: "Palak Paneer with Roti", Type: models.Dinner, Calories: 490, Protein: 24, DietTag: "Vegetarian", ImageURL: "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=500"},
}

// SeedMeals returns a copy of the built-in starter catalog so callers cannot
// mutate the shared backing slice.
func SeedMeals() []models.Meal {
	out := make([]models.Meal, len(seedMeals))
	copy(out, seedMeals)
	return out
}
