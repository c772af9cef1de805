package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/app"
)

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	var location string
	var recipeID string
	var mouse bool

	rootCmd := &cobra.Command{
		Use:           "przepisnik",
		Short:         "Terminal recipe book",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ctx.appOptions()
			opts.Location = location
			opts.RecipeID = recipeID
			opts.Mouse = mouse
			return app.Run(cmd.Context(), opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.prefs, "prefs", "", "Preferences file path")
	rootCmd.PersistentFlags().StringVar(&flags.api, "api", "", "Recipe backend URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&location, "url", "", "Start location, e.g. przepisnik://app?recipe=<uuid>")
	rootCmd.Flags().StringVarP(&recipeID, "recipe", "r", "", "Open this recipe on start")
	rootCmd.Flags().BoolVar(&mouse, "mouse", true, "Enable mouse reporting")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCookCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newAddPhotoCommand(ctx))
	rootCmd.AddCommand(newTagsCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))

	return rootCmd
}
