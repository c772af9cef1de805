package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/i18n"
	"github.com/five82/przepisnik/internal/recipes"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var title string
	var dish string
	var tags []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by title, dish type and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dishType, err := recipes.ParseDishType(dish)
			if err != nil {
				return err
			}
			query := recipes.Query{
				Title:    strings.TrimSpace(title),
				DishType: dishType,
				Tags:     cleanTags(tags),
			}
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				list, err := recipes.Fetch(c, api, query)
				if err != nil {
					return fmt.Errorf("list recipes: %w", err)
				}
				if jsonOut {
					out := make([]recipeSummary, 0, len(list))
					for _, r := range list {
						out = append(out, summarize(r))
					}
					return writeJSON(cmd, out)
				}
				printRecipeTable(cmd, ctx.printer(), list)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title fragment")
	cmd.Flags().StringVar(&dish, "type", "", "Dish type: breakfast, dinner, dessert, drink")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Required tag (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func printRecipeTable(cmd *cobra.Command, p *i18n.Printer, list []recipes.Recipe) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, p.T("No recipes"))
		return
	}
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		s := summarize(r)
		rows = append(rows, []string{
			s.Title,
			p.DishLabel(s.DishType),
			strings.Join(s.Tags, ", "),
			strconv.Itoa(s.CookCount),
			strconv.Itoa(s.Photos),
			s.UUID,
		})
	}
	headers := []string{p.T("Title"), p.T("Dish type"), p.T("Tags"), p.T("Cooked"), p.T("Photos"), "UUID"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
	fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
	fmt.Fprintln(out, p.Recipes(len(list)))
}

func cleanTags(raw []string) []string {
	var out []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}
