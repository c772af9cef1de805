package main

import (
	"context"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/app"
	"github.com/five82/przepisnik/internal/i18n"
	"github.com/five82/przepisnik/internal/prefs"
	"github.com/five82/przepisnik/internal/recipes"
)

type rootFlags struct {
	config   string
	prefs    string
	api      string
	logLevel string
}

type commandContext struct {
	flags *rootFlags

	envOnce sync.Once
	env     *app.Env
	envErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) appOptions() app.Options {
	return app.Options{
		ConfigPath: strings.TrimSpace(c.flags.config),
		PrefsPath:  strings.TrimSpace(c.flags.prefs),
		APIURL:     c.flags.api,
		LogLevel:   c.flags.logLevel,
	}
}

func (c *commandContext) ensureEnv() (*app.Env, error) {
	c.envOnce.Do(func() {
		c.env, c.envErr = app.Setup(c.appOptions())
	})
	return c.env, c.envErr
}

func (c *commandContext) withAPI(cmd *cobra.Command, fn func(context.Context, recipes.API) error) error {
	env, err := c.ensureEnv()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env.Logger.Debug("cli command", "command", cmd.CommandPath(), "api", env.Client.BaseURL())
	return fn(ctx, env.Client)
}

// printer follows the locale saved by the TUI.
func (c *commandContext) printer() *i18n.Printer {
	p := prefs.Load(strings.TrimSpace(c.flags.prefs))
	return i18n.New(i18n.ParseLocale(p.Locale))
}

func (c *commandContext) close() error {
	if c.env == nil {
		return nil
	}
	err := c.env.Close()
	c.env = nil
	return err
}
