package i18n

// polish maps English UI strings to their Polish translations. English
// strings double as catalog keys.
var polish = map[string]string{
	// dish types
	"Breakfast": "Śniadanie",
	"Dinner":    "Obiad",
	"Dessert":   "Deser",
	"Drink":     "Napój",
	"All types": "Wszystkie typy",

	// general
	"Loading...":                "Ładowanie...",
	"Keyboard shortcuts":        "Skróty klawiszowe",
	"Saving preferences failed": "Błąd zapisu ustawień",
	"Recipe":                    "Przepis",

	// list view
	"Recipes":                 "Przepisy",
	"Search recipes...":       "Szukaj przepisu...",
	"Filter by tag...":        "Filtruj po tagu...",
	"Loading recipes...":      "Ładowanie przepisów...",
	"No recipes":              "Brak przepisów",
	"Fetching recipes failed": "Błąd pobierania przepisów",
	"No photo":                "Brak zdjęcia",
	"Clear filters":           "Wyczyść filtry",
	"No suggestions":          "Brak podpowiedzi",

	// detail view
	"Loading recipe...":                  "Ładowanie przepisu...",
	"Fetching recipe failed":             "Błąd pobierania przepisu",
	"Cooked!":                            "Ugotowane!",
	"Gallery":                            "Galeria",
	"No photos":                          "Brak zdjęć",
	"Add photo":                          "Dodaj zdjęcie",
	"Uploading...":                       "Wysyłanie…",
	"Ingredients":                        "Składniki",
	"Ingredient":                         "Składnik",
	"Amount":                             "Ilość",
	"Preparation":                        "Przygotowanie",
	"Choose a photo (.jpg, .jpeg, .png)": "Wybierz zdjęcie (.jpg, .jpeg, .png)",

	// confirm dialog
	"Delete recipe":                 "Usuń przepis",
	"Delete this recipe?":           "Czy na pewno chcesz usunąć przepis?",
	"This cannot be undone.":        "Tej operacji nie można cofnąć.",
	"Deleting...":                   "Usuwanie…",
	"Deleting recipe failed":        "Błąd usuwania przepisu",
	"y/enter delete · n/esc cancel": "y/enter usuń · n/esc anuluj",

	// lightbox
	"Photo preview":       "Podgląd zdjęcia",
	"Cannot render image": "Nie można wyświetlić zdjęcia",

	// form
	"New recipe":           "Nowy przepis",
	"Edit recipe":          "Edytuj przepis",
	"Title":                "Nazwa przepisu",
	"Dish type":            "Typ dania",
	"Tags":                 "Tagi",
	"Add a tag...":         "Dodaj tag...",
	"Content":              "Przygotowanie",
	"Save recipe":          "Zapisz przepis",
	"Save changes":         "Zapisz zmiany",
	"Saving...":            "Zapisywanie…",
	"Saving recipe failed": "Błąd zapisu przepisu",
	"Title is required":    "Nazwa przepisu jest wymagana",

	// command line
	"Cooked":         "Ugotowano",
	"Photos":         "Zdjęcia",
	"No tags":        "Brak tagów",
	"Recipe deleted": "Przepis usunięty",
	"Photo added":    "Zdjęcie dodane",
}
