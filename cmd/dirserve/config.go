package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jackfish212/dirserve"
)

const envPrefix = "DIRSERVE"

// app owns the viper instance behind one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	stderr  io.Writer
}

func newApp() *app {
	return &app{v: viper.New(), stderr: os.Stderr}
}

// bindFlags registers the flags of cmd and binds each one to its config key.
func (a *app) bindFlags(cmd *cobra.Command) {
	def := dirserve.DefaultConfig()
	f := cmd.Flags()

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.dirserve.yaml or $HOME/.dirserve.yaml)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading DIRSERVE_* variables")

	f.StringP("addr", "a", def.Addr, "listen address")
	f.String("index", def.Index, "file served instead of a listing when present (empty disables)")
	f.String("stylesheet", def.Stylesheet, "CSS file for listings (default embedded)")
	f.IntP("concurrency", "c", def.Concurrency, "parallel stat calls per listing")
	f.BoolP("debug", "d", def.Debug, "enable debug logging")
	f.String("log-format", def.LogFormat, "log format: text or json")
	f.Bool("access-log", def.AccessLog, "write combined-format access log to stdout")
	f.Bool("compress", def.Compress, "gzip responses when the client accepts it")
	f.String("project-file", def.Project.File, "TOML file with footer metadata")
	f.String("git-dir", def.Project.GitDir, "git directory used to resolve the footer revision")
	f.String("project-name", "", "footer project name override")
	f.String("project-author", "", "footer author override")
	f.String("project-homepage", "", "footer homepage override")

	binds := map[string]string{
		"addr":             "addr",
		"index":            "index",
		"stylesheet":       "stylesheet",
		"concurrency":      "concurrency",
		"debug":            "debug",
		"log_format":       "log-format",
		"access_log":       "access-log",
		"compress":         "compress",
		"project.file":     "project-file",
		"project.git_dir":  "git-dir",
		"project.name":     "project-name",
		"project.author":   "project-author",
		"project.homepage": "project-homepage",
	}
	for key, flag := range binds {
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	a.v.SetDefault("root", def.Root)
}

// loadConfig merges, lowest first: defaults, config file, environment
// (including the dotenv file), flags, and the positional root.
func (a *app) loadConfig(args []string) (dirserve.Config, error) {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return dirserve.Config{}, fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(".dirserve")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return dirserve.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		fmt.Fprintf(a.stderr, "Using config file: %s\n", a.v.ConfigFileUsed())
	}

	if len(args) > 0 {
		a.v.Set("root", args[0])
	}

	var cfg dirserve.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return dirserve.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return dirserve.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg dirserve.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
