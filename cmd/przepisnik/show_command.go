package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/i18n"
	"github.com/five82/przepisnik/internal/recipes"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <uuid>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				r, err := api.Get(c, args[0])
				if err != nil {
					return fmt.Errorf("get recipe %s: %w", args[0], err)
				}
				if jsonOut {
					return writeJSON(cmd, describe(*r))
				}
				printRecipe(cmd.OutOrStdout(), ctx.printer(), *r)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func printRecipe(out io.Writer, p *i18n.Printer, r recipes.Recipe) {
	d := describe(r)

	title := d.Title
	if d.DishType != "" {
		title += " [" + p.DishLabel(d.DishType) + "]"
	}
	fmt.Fprintln(out, title)
	meta := []string{p.TimesCooked(d.CookCount)}
	if len(d.Tags) > 0 {
		meta = append(meta, strings.Join(d.Tags, ", "))
	}
	meta = append(meta, p.Photos(len(d.Images)))
	fmt.Fprintln(out, strings.Join(meta, " · "))
	fmt.Fprintln(out, d.UUID)

	if len(d.Images) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.T("Gallery"))
		for i, img := range d.Images {
			line := "  " + strconv.Itoa(i+1) + ". "
			if img.Error != "" {
				line += p.T("Cannot render image")
			} else {
				line += fmt.Sprintf("%s %d×%d", img.Format, img.Width, img.Height)
			}
			fmt.Fprintln(out, line+" · "+humanize.Bytes(uint64(img.Bytes)))
		}
	}

	if len(d.Ingredients) > 0 {
		fmt.Fprintln(out)
		rows := make([][]string, 0, len(d.Ingredients))
		for _, ing := range d.Ingredients {
			rows = append(rows, []string{ing.Ingredient, ing.Amount})
		}
		fmt.Fprintln(out, p.T("Ingredients"))
		fmt.Fprintln(out, renderTable(out, []string{p.T("Ingredient"), p.T("Amount")}, rows, nil))
	}

	if paragraphs := r.Paragraphs(); len(paragraphs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.T("Preparation"))
		for _, para := range paragraphs {
			fmt.Fprintln(out, "  "+para)
		}
	}
}
