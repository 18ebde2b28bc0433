package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jackfish212/dirserve"
)

func testApp(t *testing.T) *app {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	a := newApp()
	a.stderr = &bytes.Buffer{}
	return a
}

func parse(t *testing.T, a *app, argv ...string) (dirserve.Config, error) {
	t.Helper()
	cmd := newRootCmd(a)
	if err := cmd.ParseFlags(argv); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return a.loadConfig(cmd.Flags().Args())
}

func TestLoadConfigDefaults(t *testing.T) {
	a := testApp(t)
	cfg, err := parse(t, a)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := dirserve.DefaultConfig()
	if cfg != want {
		t.Errorf("cfg = %+v\nwant %+v", cfg, want)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	a := testApp(t)
	root := t.TempDir()
	cfg, err := parse(t, a,
		"--addr", ":8080",
		"--index", "",
		"-c", "3",
		"--compress",
		"--log-format", "json",
		"--project-name", "mirror",
		root,
	)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Root != root || cfg.Addr != ":8080" || cfg.Index != "" || cfg.Concurrency != 3 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Compress || cfg.LogFormat != "json" || cfg.Project.Name != "mirror" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	a := testApp(t)
	root := t.TempDir()
	t.Setenv("DIRSERVE_ROOT", root)
	t.Setenv("DIRSERVE_ADDR", ":9000")
	t.Setenv("DIRSERVE_PROJECT_AUTHOR", "ops")

	cfg, err := parse(t, a)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Root != root || cfg.Addr != ":9000" || cfg.Project.Author != "ops" {
		t.Errorf("cfg = %+v", cfg)
	}

	// flags win over the environment
	a = newApp()
	a.stderr = &bytes.Buffer{}
	cfg, err = parse(t, a, "--addr", ":7000")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000", cfg.Addr)
	}
}

func TestLoadConfigDotenv(t *testing.T) {
	a := testApp(t)
	// godotenv never overrides variables that are already set; make sure
	// the key is unset for this test and restored afterwards.
	t.Setenv("DIRSERVE_CONCURRENCY", "")
	os.Unsetenv("DIRSERVE_CONCURRENCY")
	if err := os.WriteFile(".env", []byte("DIRSERVE_CONCURRENCY=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(t, a)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Concurrency != 5 {
		t.Errorf("Concurrency = %d, want 5", cfg.Concurrency)
	}
}

func TestLoadConfigFile(t *testing.T) {
	a := testApp(t)
	root := t.TempDir()
	yaml := "root: " + root + "\naddr: \":8443\"\nproject:\n  homepage: https://example.com\n"
	if err := os.WriteFile(".dirserve.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(t, a)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Root != root || cfg.Addr != ":8443" || cfg.Project.Homepage != "https://example.com" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !strings.Contains(a.stderr.(*bytes.Buffer).String(), ".dirserve.yaml") {
		t.Errorf("config file use not reported")
	}
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	a := testApp(t)
	_, err := parse(t, a, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	a := testApp(t)
	_, err := parse(t, a, "--concurrency", "0")
	if !errors.Is(err, dirserve.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	a = newApp()
	a.stderr = &bytes.Buffer{}
	_, err = parse(t, a, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, dirserve.ErrInvalidConfig) {
		t.Errorf("missing root: err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := dirserve.DefaultConfig()
	cfg.LogFormat = "json"
	newLogger(cfg, &buf).Info("hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json log line: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["k"] != "v" {
		t.Errorf("record = %v", rec)
	}

	buf.Reset()
	cfg.LogFormat = "text"
	logger := newLogger(cfg, &buf)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written without --debug: %q", buf.String())
	}
	cfg.Debug = true
	newLogger(cfg, &buf).Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("text log = %q", buf.String())
	}
}

func TestVersionCommand(t *testing.T) {
	a := testApp(t)
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "dirserve ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestPrintBanner(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	cfg := dirserve.DefaultConfig()
	cfg.Root = "/srv/www"
	cfg.Compress = true
	printBanner(&buf, cfg, dirserve.LoadProjectInfo(dirserve.ProjectConfig{}))
	out := buf.String()
	for _, want := range []string{"/srv/www", ":80", "index.html", "gzip"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
}
