// Package i18n holds the UI message catalog for English and Polish,
// including CLDR plural forms for counted nouns.
package i18n

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/five82/przepisnik/internal/recipes"
)

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Polish  Locale = "pl"
)

// Locales lists the supported locales in toggle order.
var Locales = []Locale{English, Polish}

// ParseLocale maps a BCP 47 tag onto a supported locale, falling back to
// English.
func ParseLocale(raw string) Locale {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return English
	}
	base, _ := tag.Base()
	if base.String() == string(Polish) {
		return Polish
	}
	return English
}

// Next returns the locale after l.
func (l Locale) Next() Locale {
	for i, known := range Locales {
		if known == l {
			return Locales[(i+1)%len(Locales)]
		}
	}
	return English
}

func (l Locale) tag() language.Tag {
	if l == Polish {
		return language.Polish
	}
	return language.English
}

// Counted message keys. Each takes a single integer argument.
const (
	keyRecipes     = "%d recipes"
	keyIngredients = "%d ingredients"
	keyTimesCooked = "%d times cooked"
	keyPhotos      = "%d photos"
)

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	counted := []struct {
		key string
		en  [2]string
		pl  [3]string
	}{
		{keyRecipes, [2]string{"%d recipe", "%d recipes"}, [3]string{"%d przepis", "%d przepisy", "%d przepisów"}},
		{keyIngredients, [2]string{"%d ingredient", "%d ingredients"}, [3]string{"%d składnik", "%d składniki", "%d składników"}},
		{keyTimesCooked, [2]string{"cooked %d time", "cooked %d times"}, [3]string{"ugotowano %d raz", "ugotowano %d razy", "ugotowano %d razy"}},
		{keyPhotos, [2]string{"%d photo", "%d photos"}, [3]string{"%d zdjęcie", "%d zdjęcia", "%d zdjęć"}},
	}
	for _, c := range counted {
		_ = b.Set(language.English, c.key, plural.Selectf(1, "%d",
			plural.One, c.en[0],
			plural.Other, c.en[1],
		))
		_ = b.Set(language.Polish, c.key, plural.Selectf(1, "%d",
			plural.One, c.pl[0],
			plural.Few, c.pl[1],
			plural.Many, c.pl[2],
			plural.Other, c.pl[2],
		))
	}

	for key, pl := range polish {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Polish, key, pl)
	}
	return b
}

// Printer formats catalog messages for one locale.
type Printer struct {
	locale Locale
	p      *message.Printer
}

// New returns a printer for locale.
func New(locale Locale) *Printer {
	if locale != Polish {
		locale = English
	}
	return &Printer{locale: locale, p: message.NewPrinter(locale.tag(), message.Catalog(cat))}
}

// Locale returns the printer's locale.
func (p *Printer) Locale() Locale { return p.locale }

// T translates a static message. Unknown keys are returned as-is.
func (p *Printer) T(key string) string {
	return p.p.Sprintf(key)
}

// Sprintf formats a catalog message.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Recipes renders a pluralized recipe count.
func (p *Printer) Recipes(n int) string { return p.p.Sprintf(keyRecipes, n) }

// Ingredients renders a pluralized ingredient count.
func (p *Printer) Ingredients(n int) string { return p.p.Sprintf(keyIngredients, n) }

// TimesCooked renders the cook counter.
func (p *Printer) TimesCooked(n int) string { return p.p.Sprintf(keyTimesCooked, n) }

// Photos renders a pluralized photo count.
func (p *Printer) Photos(n int) string { return p.p.Sprintf(keyPhotos, n) }

// DishLabel returns the display name of t, or the "all types" label for
// the unset type.
func (p *Printer) DishLabel(t recipes.DishType) string {
	switch t {
	case recipes.Breakfast:
		return p.T("Breakfast")
	case recipes.Dinner:
		return p.T("Dinner")
	case recipes.Dessert:
		return p.T("Dessert")
	case recipes.Drink:
		return p.T("Drink")
	case "":
		return p.T("All types")
	default:
		return string(t)
	}
}
