package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/recipes"
)

func newCookCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cook <uuid>",
		Short: "Record that a recipe was cooked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				r, err := api.Cook(c, args[0])
				if err != nil {
					return fmt.Errorf("cook recipe %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.Title, ctx.printer().TimesCooked(r.CookCount))
				return nil
			})
		},
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <uuid>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				if err := api.Delete(c, args[0]); err != nil {
					return fmt.Errorf("delete recipe %s: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ctx.printer().T("Recipe deleted"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}

func newAddPhotoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add-photo <uuid> <file>",
		Short: "Upload a .jpg, .jpeg or .png photo to a recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			photo, err := recipes.ReadPhoto(args[1])
			if err != nil {
				return err
			}
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				if err := api.AddPhoto(c, args[0], photo); err != nil {
					return fmt.Errorf("add photo to %s: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ctx.printer().T("Photo added"))
				return nil
			})
		},
	}
}
