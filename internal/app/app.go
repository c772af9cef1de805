package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/przepisnik/internal/config"
	"github.com/five82/przepisnik/internal/logging"
	"github.com/five82/przepisnik/internal/nav"
	"github.com/five82/przepisnik/internal/prefs"
	"github.com/five82/przepisnik/internal/recipes"
	"github.com/five82/przepisnik/internal/ui"
)

// Options configure the przepisnik application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/przepisnik/prefs.toml
	APIURL     string // overrides config and environment
	LogLevel   string // overrides config
	Location   string // start URL such as przepisnik://app?recipe=<uuid>
	RecipeID   string // opens this recipe; wins over Location's recipe
	Mouse      bool
}

// Env holds the collaborators shared by the TUI and the subcommands.
type Env struct {
	Config config.Config
	Logger *logging.Logger
	Client *recipes.Client
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	return e.Logger.Close()
}

// Setup loads configuration, applies flag overrides, and builds the logger
// and API client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Dir: cfg.LogDir})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := recipes.NewClient(cfg.APIURL,
		recipes.WithTimeout(cfg.Timeout),
		recipes.WithLogger(logger.Logger),
	)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("init recipe client: %w", err)
	}
	return &Env{Config: cfg, Logger: logger, Client: client}, nil
}

// StartLocation builds the initial navigation from a URL and an optional
// recipe id.
func StartLocation(location, recipeID string) (*nav.History, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = nav.DefaultURL
	}
	if id := strings.TrimSpace(recipeID); id != "" {
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("parse location %q: %w", location, err)
		}
		q := u.Query()
		q.Set(nav.RecipeParam, id)
		u.RawQuery = q.Encode()
		location = u.String()
	}
	return nav.New(location)
}

// Run boots the przepisnik TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	history, err := StartLocation(opts.Location, opts.RecipeID)
	if err != nil {
		return err
	}
	userPrefs := prefs.Load(opts.PrefsPath)

	env.Logger.Info("starting tui",
		"api", env.Client.BaseURL(),
		"location", history.URL(),
		"theme", userPrefs.Theme,
		"locale", userPrefs.Locale,
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		API:       env.Client,
		Nav:       history,
		ThemeName: userPrefs.Theme,
		Locale:    userPrefs.Locale,
		PrefsPath: opts.PrefsPath,
		Logger:    env.Logger.Logger,
		Mouse:     opts.Mouse,
	})
	if err != nil && ctx.Err() != nil {
		env.Logger.Info("tui stopped", "reason", ctx.Err())
		return ctx.Err()
	}
	return err
}
