package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DishType classifies a recipe's meal category. The zero value means unset.
type DishType string

const (
	Breakfast DishType = "BREAKFAST"
	Dinner    DishType = "DINNER"
	Dessert   DishType = "DESSERT"
	Drink     DishType = "DRINK"
)

// DishTypes lists every dish type in display order.
var DishTypes = []DishType{Breakfast, Dinner, Dessert, Drink}

// ParseDishType accepts any casing and surrounding whitespace. An empty
// input yields the unset type.
func ParseDishType(raw string) (DishType, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", nil
	}
	for _, t := range DishTypes {
		if string(t) == trimmed {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown dish type %q", raw)
}

// Valid reports whether t is one of the known dish types.
func (t DishType) Valid() bool {
	for _, known := range DishTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Ingredient is a single (name, amount) row.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Amount     string `json:"amount"`
}

// Recipe mirrors the backend's recipe document.
type Recipe struct {
	UUID        string       `json:"uuid"`
	Title       string       `json:"title"`
	Content     string       `json:"content,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	TypeOfDish  DishType     `json:"typeOfDish,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	CookCount   int          `json:"cookCount,omitempty"`
	Images      []Binary     `json:"images,omitempty"`
}

// Paragraphs splits Content on newlines, skipping blank lines.
func (r Recipe) Paragraphs() []string {
	var out []string
	for _, line := range strings.Split(r.Content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// HasTag reports whether tag is attached (exact, case-sensitive match).
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Binary is a server-serialized image: base64 text that may arrive as one
// string or as ordered chunks.
type Binary struct {
	Type json.RawMessage `json:"type,omitempty"`
	Data Chunks          `json:"data,omitempty"`
}

// Chunks holds base64 text fragments in wire order.
type Chunks []string

// UnmarshalJSON accepts a string, an array of strings, or null.
func (c *Chunks) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = nil
		return nil
	}
	if trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return fmt.Errorf("binary data: %w", err)
		}
		*c = Chunks{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return fmt.Errorf("binary data: %w", err)
	}
	*c = Chunks(many)
	return nil
}

// MarshalJSON writes a single chunk as a plain string.
func (c Chunks) MarshalJSON() ([]byte, error) {
	switch len(c) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(c[0])
	default:
		return json.Marshal([]string(c))
	}
}

// Query describes a search. Empty parts are not sent.
type Query struct {
	Title    string
	DishType DishType
	Tags     []string
}

// IsEmpty reports whether every part of the query is empty.
func (q Query) IsEmpty() bool {
	return q.Title == "" && q.DishType == "" && len(q.Tags) == 0
}
