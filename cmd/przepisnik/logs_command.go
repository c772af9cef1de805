package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/przepisnik/internal/config"
	"github.com/five82/przepisnik/internal/logging"
	"github.com/five82/przepisnik/internal/logtail"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var level string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the newest entries from the przepisnik log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			minLevel, err := logging.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := config.Load(ctx.appOptions().ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path := filepath.Join(cfg.LogDir, logging.FileName)
			entries, err := logtail.Read(path, lines, minLevel)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No log entries available")
				return nil
			}
			styles := newLogStyles(shouldColorize(out))
			for _, e := range entries {
				writeLogEntry(out, styles, e)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "Number of entries to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level: debug, info, warn, error")
	return cmd
}

type logStyles struct {
	time  lipgloss.Style
	attr  lipgloss.Style
	level map[slog.Level]lipgloss.Style
}

func newLogStyles(color bool) logStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return logStyles{time: plain, attr: plain, level: map[slog.Level]lipgloss.Style{}}
	}
	return logStyles{
		time: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		attr: lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED")),
		level: map[slog.Level]lipgloss.Style{
			slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#63cdcf")).Bold(true),
			slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#81b29a")).Bold(true),
			slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dbc074")).Bold(true),
			slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#c94f6d")).Bold(true),
		},
	}
}

func writeLogEntry(w io.Writer, s logStyles, e logtail.Entry) {
	if e.Time == "" {
		fmt.Fprintln(w, e.Raw)
		return
	}
	levelStyle, ok := s.level[e.Level]
	if !ok {
		levelStyle = lipgloss.NewStyle()
	}
	parts := []string{
		s.time.Render(e.Time),
		levelStyle.Render(fmt.Sprintf("%-5s", e.Level.String())),
		e.Message,
	}
	for _, a := range e.Attrs {
		parts = append(parts, s.attr.Render(a.Key+"=")+a.Value)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
