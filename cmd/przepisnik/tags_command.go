package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/recipes"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tags [query]",
		Short: "List known tags, optionally matching a query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = strings.TrimSpace(args[0])
			}
			return ctx.withAPI(cmd, func(c context.Context, api recipes.API) error {
				tags, err := api.FindTags(c, query)
				if err != nil {
					return fmt.Errorf("find tags: %w", err)
				}
				if jsonOut {
					if tags == nil {
						tags = []string{}
					}
					return writeJSON(cmd, tags)
				}
				if len(tags) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ctx.printer().T("No tags"))
					return nil
				}
				for _, tag := range tags {
					fmt.Fprintln(cmd.OutOrStdout(), tag)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}
