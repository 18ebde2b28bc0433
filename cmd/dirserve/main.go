// dirserve serves a directory tree over HTTP and renders browsable HTML
// listings for directories.
//
// Usage:
//
//	dirserve [flags] [root]
//
// root defaults to "/". Every flag can also be set in .dirserve.yaml or
// through a DIRSERVE_* environment variable, e.g. DIRSERVE_ADDR=:8080 or
// DIRSERVE_PROJECT_NAME=mirror.
//
// Example:
//
//	dirserve --addr :8080 --compress ./public
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jackfish212/dirserve"
	"github.com/jackfish212/dirserve/httpserve"
	"github.com/jackfish212/dirserve/listing"
	"github.com/jackfish212/dirserve/mounts"
	"github.com/jackfish212/dirserve/types"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dirserve [root]",
		Short: "Static file server with HTML directory listings",
		Long: `dirserve serves the files below root over HTTP. Requests for a
directory return an HTML listing with the type, size and timestamps of
every entry, unless the directory holds an index file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(args)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, a.stderr)
		},
	}
	a.bindFlags(root)

	version := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), dirserve.GetVersionInfo().String())
		},
	}
	root.AddCommand(version)
	return root
}

func serve(ctx context.Context, cfg dirserve.Config, stderr io.Writer) error {
	logger := newLogger(cfg, stderr)
	slog.SetDefault(logger)

	info := dirserve.LoadProjectInfo(cfg.Project)
	provider := mounts.NewLocalFS(cfg.Root)
	renderer := listing.NewRenderer(provider,
		listing.WithFooter(info),
		listing.WithStylesheet(dirserve.LoadStylesheet(cfg.Stylesheet)),
		listing.WithConcurrency(cfg.Concurrency),
		listing.WithLogger(logger),
	)
	srv := httpserve.New(provider, cfg,
		httpserve.WithLogger(logger),
		httpserve.WithRenderer(renderer),
	)

	printBanner(stderr, cfg, info)
	if err := srv.Run(ctx); err != nil {
		logger.Error("dirserve: server error", "error", err)
		return err
	}
	return nil
}

func printBanner(w io.Writer, cfg dirserve.Config, info types.ProjectInfo) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Faint)

	name := info.Name
	if name == "" {
		name = "dirserve"
	}
	title.Fprintf(w, "%s %s\n", name, dirserve.GetVersionInfo().Version)
	row := func(k, v string) {
		label.Fprintf(w, "  %-8s", k)
		fmt.Fprintln(w, v)
	}
	row("root", color.GreenString(cfg.Root))
	row("listen", color.GreenString(cfg.Addr))
	if cfg.Index != "" {
		row("index", cfg.Index)
	}
	if cfg.Compress {
		row("gzip", "on")
	}
}
