package dirserve

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jackfish212/dirserve/listing"
	"github.com/jackfish212/dirserve/types"
)

// ─── Server configuration ───

// Config is the process-wide configuration, built once at startup and
// passed by value to the server. Field tags follow the viper keys.
type Config struct {
	Root        string        `mapstructure:"root"`
	Addr        string        `mapstructure:"addr"`
	Index       string        `mapstructure:"index"`
	Stylesheet  string        `mapstructure:"stylesheet"`
	Concurrency int           `mapstructure:"concurrency"`
	Debug       bool          `mapstructure:"debug"`
	LogFormat   string        `mapstructure:"log_format"`
	AccessLog   bool          `mapstructure:"access_log"`
	Compress    bool          `mapstructure:"compress"`
	Project     ProjectConfig `mapstructure:"project"`
}

// ProjectConfig locates and overrides the metadata shown in listing footers.
type ProjectConfig struct {
	File     string `mapstructure:"file"`
	GitDir   string `mapstructure:"git_dir"`
	Name     string `mapstructure:"name"`
	Author   string `mapstructure:"author"`
	Homepage string `mapstructure:"homepage"`
}

var (
	ErrInvalidConfig = errors.New("dirserve: invalid configuration")
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:        "/",
		Addr:        ":80",
		Index:       "index.html",
		Concurrency: listing.DefaultConcurrency,
		LogFormat:   "text",
		AccessLog:   true,
		Project: ProjectConfig{
			File:   "project.toml",
			GitDir: ".git",
		},
	}
}

// Validate checks the configuration and that the root is a readable
// directory.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: root is empty", ErrInvalidConfig)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfig, c.Concurrency)
	}
	if strings.ContainsAny(c.Index, `/\`) {
		return fmt.Errorf("%w: index %q must be a bare file name", ErrInvalidConfig, c.Index)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}

	fi, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("%w: root: %v", ErrInvalidConfig, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: root %s is not a directory", ErrInvalidConfig, c.Root)
	}
	return nil
}

// LoadStylesheet reads the listing stylesheet. An empty path selects the
// embedded default; an unreadable file yields an empty stylesheet.
func LoadStylesheet(path string) string {
	if path == "" {
		return listing.DefaultStylesheet
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("dirserve: stylesheet unreadable, listings will be unstyled", "path", path, "error", err)
		return ""
	}
	return string(data)
}

// ─── Project metadata ───

type projectFile struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Author   string `toml:"author"`
	Homepage string `toml:"homepage"`
}

// LoadProjectInfo assembles footer metadata. Later sources win: build info,
// the project file, the git checkout, then explicit overrides. Every source
// is optional.
func LoadProjectInfo(cfg ProjectConfig) types.ProjectInfo {
	vi := GetVersionInfo()
	info := types.ProjectInfo{
		Name:     vi.Module,
		Revision: vi.GitCommit,
	}
	if vi.Version != "" && vi.Version != "dev" && vi.Version != "(devel)" {
		info.Version = vi.Version
	}

	if cfg.File != "" {
		var pf projectFile
		if _, err := toml.DecodeFile(cfg.File, &pf); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				slog.Warn("dirserve: project file unreadable", "path", cfg.File, "error", err)
			}
		} else {
			info.Name = firstNonEmpty(pf.Name, info.Name)
			info.Version = firstNonEmpty(pf.Version, info.Version)
			info.Author = pf.Author
			info.Homepage = pf.Homepage
		}
	}

	if cfg.GitDir != "" {
		if rev, err := ResolveGitHead(cfg.GitDir); err == nil {
			info.Revision = rev
		} else {
			slog.Debug("dirserve: git revision unavailable", "dir", cfg.GitDir, "error", err)
		}
	}

	info.Name = firstNonEmpty(cfg.Name, info.Name)
	info.Author = firstNonEmpty(cfg.Author, info.Author)
	info.Homepage = firstNonEmpty(cfg.Homepage, info.Homepage)
	return info
}

// ResolveGitHead returns the commit HEAD points at. A symbolic ref is
// looked up as a loose ref file first and in packed-refs second.
func ResolveGitHead(gitDir string) (string, error) {
	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", err
	}
	ref := strings.TrimSpace(string(head))
	name, symbolic := strings.CutPrefix(ref, "ref: ")
	if !symbolic {
		if ref == "" {
			return "", fmt.Errorf("%w: %s/HEAD is empty", types.ErrNotFound, gitDir)
		}
		return ref, nil
	}
	name = strings.TrimSpace(name)

	if hash, err := os.ReadFile(filepath.Join(gitDir, filepath.FromSlash(name))); err == nil {
		if h := strings.TrimSpace(string(hash)); h != "" {
			return h, nil
		}
	}
	return lookupPackedRef(gitDir, name)
}

func lookupPackedRef(gitDir, name string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "packed-refs"))
	if err != nil {
		return "", fmt.Errorf("%w: ref %s", types.ErrNotFound, name)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == '#' || line[0] == '^' {
			continue
		}
		hash, ref, ok := strings.Cut(line, " ")
		if ok && ref == name {
			return hash, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: ref %s", types.ErrNotFound, name)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ─── Version info ───

var (
	version   = "dev"
	buildDate = ""
	gitCommit = ""
)

type VersionInfo struct {
	Module    string
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
}

// GetVersionInfo reports the values injected with -ldflags, falling back to
// the build information embedded by the Go toolchain.
func GetVersionInfo() VersionInfo {
	vi := VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		vi.Module = bi.Main.Path
		if vi.Version == "dev" && bi.Main.Version != "" {
			vi.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if vi.GitCommit == "" {
					vi.GitCommit = s.Value
				}
			case "vcs.time":
				if vi.BuildDate == "" {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						vi.BuildDate = t.Format("2006-01-02")
					}
				}
			}
		}
	}
	return vi
}

// String is the one-line form printed by "dirserve version".
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	if commit != "" {
		commit = " (" + commit + ")"
	}
	s := fmt.Sprintf("dirserve %s%s %s %s", v.Version, commit, v.GoVersion, v.Platform)
	if v.BuildDate != "" {
		s += " built " + v.BuildDate
	}
	return s
}
