// Package app provides the orchestration layer for the przepisnik application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the
// recipe API client, navigation, and the UI. It is the composition root
// shared by the TUI and the scriptable subcommands.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml, env override
//	       ├─────> logging.New()        Open <log_dir>/przepisnik.log
//	       ├─────> recipes.NewClient()  HTTP client with request timeout
//	       ├─────> StartLocation()      --url / --recipe to nav.History
//	       ├─────> prefs.Load()         Theme and locale
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Setup failures (unreadable config, bad API URL, log directory) are
// returned from Run. Request failures inside the TUI are rendered where
// they happen and never end the program.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{RecipeID: "abc-123"}); err != nil {
//		log.Fatalf("przepisnik failed: %v", err)
//	}
package app
