package ui

import (
	"testing"

	"github.com/five82/przepisnik/internal/recipes"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != "Nightfox" {
		t.Fatalf("ThemeNames() = %v, want Nightfox first of 3", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox", got)
	}
}

func TestThemes_ColorEveryDishType(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, dish := range recipes.DishTypes {
			if th.DishColors[dish] == "" {
				t.Fatalf("theme %s has no color for %s", name, dish)
			}
		}
	}
}
