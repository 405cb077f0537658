package seed

import "github.com/pageza/recipebook/backend/internal/models"

func cal(v float64) *float64 { return &v }

func image(n string) string {
	return "https://cdn.dummyjson.com/recipe-images/" + n + ".webp"
}

var demoRecipes = []models.Recipe{
	{
		Name:        "Classic Margherita Pizza",
		Ingredients: models.StringList{
			"2 1/4 cups all-purpose flour", "1 tsp instant yeast", "1 tsp salt", "1 tbsp olive oil",
			"3/4 cup warm water", "1/2 cup tomato sauce", "8 oz fresh mozzarella", "Fresh basil leaves",
		},
		Instructions: models.StringList{
			"Mix flour, yeast and salt, then add oil and water until a dough forms.",
			"Knead for 10 minutes and let rise for 1 hour.",
			"Roll out, spread sauce and top with mozzarella.",
			"Bake at 475°F for 12-15 minutes and finish with basil.",
		},
		PrepTimeMinutes:    20,
		CookTimeMinutes:    75,
		Servings:           4,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Italian",
		CaloriesPerServing: cal(285),
		Tags:               models.StringList{"pizza", "italian", "vegetarian", "classic"},
		Image:              image("1"),
		Rating:             4.8,
		ReviewCount:        124,
		MealType:           models.StringList{"Lunch", "Dinner"},
	},
	{
		Name:        "Chicken Tikka Masala",
		Ingredients: models.StringList{
			"1.5 lbs boneless chicken thighs", "1 cup plain yogurt", "2 tbsp garam masala",
			"1 can crushed tomatoes", "1 cup heavy cream", "1 onion, diced", "4 cloves garlic",
		},
		Instructions: models.StringList{
			"Marinate chicken in yogurt and spices for 2 hours.",
			"Grill or broil the chicken until charred.",
			"Simmer onion, garlic and tomatoes, then stir in cream.",
			"Add the chicken and simmer for 10 minutes.",
		},
		PrepTimeMinutes:    30,
		CookTimeMinutes:    40,
		Servings:           4,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Indian",
		CaloriesPerServing: cal(450),
		Tags:               models.StringList{"chicken", "curry", "indian", "spicy"},
		Image:              image("2"),
		Rating:             4.9,
		ReviewCount:        210,
		MealType:           models.StringList{"Dinner"},
	},
	{
		Name:        "Classic Beef Tacos",
		Ingredients: models.StringList{
			"1 lb ground beef", "1 packet taco seasoning", "8 corn tortillas",
			"1 cup shredded lettuce", "1 tomato, diced", "1/2 cup shredded cheddar",
		},
		Instructions: models.StringList{
			"Brown the beef and drain the fat.",
			"Stir in seasoning with a splash of water and simmer for 5 minutes.",
			"Warm the tortillas and fill with beef and toppings.",
		},
		PrepTimeMinutes:    10,
		CookTimeMinutes:    15,
		Servings:           4,
		Difficulty:         models.DifficultyEasy,
		Cuisine:            "Mexican",
		CaloriesPerServing: cal(380),
		Tags:               models.StringList{"tacos", "beef", "quick"},
		Image:              image("3"),
		Rating:             4.6,
		ReviewCount:        98,
		MealType:           models.StringList{"Lunch", "Dinner"},
	},
	{
		Name:        "Pad Thai",
		Ingredients: models.StringList{
			"8 oz rice noodles", "2 tbsp fish sauce", "2 tbsp tamarind paste", "1 tbsp palm sugar",
			"8 oz shrimp", "2 eggs", "1 cup bean sprouts", "Crushed peanuts",
		},
		Instructions: models.StringList{
			"Soak the noodles in warm water for 30 minutes.",
			"Whisk fish sauce, tamarind and sugar into a sauce.",
			"Stir-fry shrimp, push aside and scramble the eggs.",
			"Toss in noodles and sauce, finish with sprouts and peanuts.",
		},
		PrepTimeMinutes:    15,
		CookTimeMinutes:    15,
		Servings:           2,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Thai",
		CaloriesPerServing: cal(520),
		Tags:               models.StringList{"noodles", "thai", "seafood"},
		Image:              image("4"),
		Rating:             4.7,
		ReviewCount:        156,
		MealType:           models.StringList{"Lunch", "Dinner"},
	},
	{
		Name:        "Japanese Miso Soup",
		Ingredients: models.StringList{
			"4 cups dashi stock", "3 tbsp white miso paste", "1/2 block silken tofu",
			"2 green onions", "1 sheet nori",
		},
		Instructions: models.StringList{
			"Heat the dashi without boiling.",
			"Dissolve the miso in a ladle of stock and stir it back in.",
			"Add tofu, nori and green onions and serve.",
		},
		PrepTimeMinutes:    5,
		CookTimeMinutes:    10,
		Servings:           4,
		Difficulty:         models.DifficultyEasy,
		Cuisine:            "Japanese",
		CaloriesPerServing: cal(85),
		Tags:               models.StringList{"soup", "japanese", "vegetarian", "quick"},
		Image:              image("5"),
		Rating:             4.5,
		ReviewCount:        67,
		MealType:           models.StringList{"Breakfast", "Lunch", "Side Dish"},
	},
	{
		Name:        "Korean Bibimbap",
		Ingredients: models.StringList{
			"2 cups cooked rice", "8 oz beef sirloin", "1 carrot, julienned", "1 zucchini, julienned",
			"2 cups spinach", "4 eggs", "Gochujang",
		},
		Instructions: models.StringList{
			"Marinate and stir-fry the beef.",
			"Saute each vegetable separately.",
			"Fry the eggs sunny side up.",
			"Arrange everything over rice and top with gochujang.",
		},
		PrepTimeMinutes:    30,
		CookTimeMinutes:    30,
		Servings:           4,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Korean",
		CaloriesPerServing: cal(550),
		Tags:               models.StringList{"korean", "rice bowl", "beef"},
		Image:              image("8"),
		Rating:             4.7,
		ReviewCount:        88,
		MealType:           models.StringList{"Lunch", "Dinner"},
	},
	{
		Name:        "Shakshuka",
		Ingredients: models.StringList{
			"2 tbsp olive oil", "1 onion, diced", "1 red bell pepper", "1 can crushed tomatoes",
			"1 tsp cumin", "1 tsp paprika", "6 eggs", "Fresh parsley",
		},
		Instructions: models.StringList{
			"Soften onion and pepper in oil.",
			"Add spices and tomatoes and simmer for 10 minutes.",
			"Make wells, crack in the eggs and cover until set.",
		},
		PrepTimeMinutes:    10,
		CookTimeMinutes:    25,
		Servings:           4,
		Difficulty:         models.DifficultyEasy,
		Cuisine:            "Middle Eastern",
		CaloriesPerServing: cal(220),
		Tags:               models.StringList{"eggs", "vegetarian", "one-pan"},
		Image:              image("11"),
		Rating:             4.6,
		ReviewCount:        74,
		MealType:           models.StringList{"Breakfast", "Lunch"},
	},
	{
		Name:        "Spaghetti Carbonara",
		Ingredients: models.StringList{
			"1 lb spaghetti", "6 oz pancetta", "4 egg yolks", "1 cup Pecorino Romano", "Black pepper",
		},
		Instructions: models.StringList{
			"Cook the spaghetti until al dente.",
			"Crisp the pancetta in a skillet.",
			"Whisk yolks with cheese and pepper.",
			"Toss hot pasta with pancetta and egg mixture off the heat.",
		},
		PrepTimeMinutes:    10,
		CookTimeMinutes:    15,
		Servings:           4,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Italian",
		CaloriesPerServing: cal(600),
		Tags:               models.StringList{"pasta", "italian", "classic"},
		Image:              image("14"),
		Rating:             4.8,
		ReviewCount:        143,
		MealType:           models.StringList{"Dinner"},
	},
	{
		Name:        "Tiramisu",
		Ingredients: models.StringList{
			"6 egg yolks", "3/4 cup sugar", "16 oz mascarpone", "2 cups strong espresso",
			"24 ladyfingers", "Cocoa powder",
		},
		Instructions: models.StringList{
			"Whisk yolks and sugar until pale, then fold in mascarpone.",
			"Dip ladyfingers in espresso and layer with the cream.",
			"Chill for at least 4 hours and dust with cocoa.",
		},
		PrepTimeMinutes:    30,
		CookTimeMinutes:    0,
		Servings:           8,
		Difficulty:         models.DifficultyMedium,
		Cuisine:            "Italian",
		CaloriesPerServing: cal(420),
		Tags:               models.StringList{"dessert", "italian", "no-bake"},
		Image:              image("17"),
		Rating:             4.9,
		ReviewCount:        187,
		MealType:           models.StringList{"Dessert"},
	},
	{
		Name:        "Beef Wellington",
		Ingredients: models.StringList{
			"2 lb beef tenderloin", "1 lb mushrooms", "8 slices prosciutto", "1 sheet puff pastry",
			"2 tbsp Dijon mustard", "1 egg",
		},
		Instructions: models.StringList{
			"Sear the tenderloin and brush with mustard.",
			"Cook the mushrooms down to a dry paste.",
			"Wrap beef in prosciutto and mushrooms, then in pastry.",
			"Brush with egg and bake at 400°F for 40 minutes.",
		},
		PrepTimeMinutes:    45,
		CookTimeMinutes:    40,
		Servings:           6,
		Difficulty:         models.DifficultyHard,
		Cuisine:            "British",
		CaloriesPerServing: cal(710),
		Tags:               models.StringList{"beef", "holiday", "pastry"},
		Image:              image("20"),
		Rating:             4.4,
		ReviewCount:        52,
		MealType:           models.StringList{"Dinner"},
	},
}
