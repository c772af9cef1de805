package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/imagecodec"
	"github.com/five82/przepisnik/internal/recipes"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type recipeSummary struct {
	UUID      string           `json:"uuid"`
	Title     string           `json:"title"`
	DishType  recipes.DishType `json:"typeOfDish,omitempty"`
	Tags      []string         `json:"tags"`
	CookCount int              `json:"cookCount"`
	Photos    int              `json:"photos"`
}

type photoSummary struct {
	Format string `json:"format,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Bytes  int    `json:"bytes"`
	Error  string `json:"error,omitempty"`
}

type recipeDetail struct {
	recipeSummary
	Ingredients []recipes.Ingredient `json:"ingredients"`
	Content     string               `json:"content"`
	Images      []photoSummary       `json:"images"`
}

func summarize(r recipes.Recipe) recipeSummary {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return recipeSummary{
		UUID:      r.UUID,
		Title:     r.Title,
		DishType:  r.TypeOfDish,
		Tags:      tags,
		CookCount: r.CookCount,
		Photos:    len(imagecodec.Gallery(r.Images)),
	}
}

func describe(r recipes.Recipe) recipeDetail {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []recipes.Ingredient{}
	}
	gallery := imagecodec.Gallery(r.Images)
	images := make([]photoSummary, 0, len(gallery))
	for _, ref := range gallery {
		info, err := imagecodec.Probe(ref)
		photo := photoSummary{Format: info.Format, Width: info.Width, Height: info.Height, Bytes: info.Bytes}
		if err != nil {
			photo.Error = err.Error()
		}
		images = append(images, photo)
	}
	return recipeDetail{
		recipeSummary: summarize(r),
		Ingredients:   ingredients,
		Content:       r.Content,
		Images:        images,
	}
}
