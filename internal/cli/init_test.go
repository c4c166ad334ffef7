package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/namelint/internal/config"
	"github.com/modu-ai/namelint/internal/ui"
	"github.com/modu-ai/namelint/pkg/models"
)

func TestInitCmd_Yes(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "", "init", "--yes", dir)
	if err != nil {
		t.Fatalf("init --yes: %v", err)
	}
	path := filepath.Join(dir, config.FileName)
	if !strings.Contains(out, "Created "+path) {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.NewLoader(nil).WithLookup(noEnv).Load(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Rules.MaxExportsPerFile != config.DefaultMaxExportsPerFile {
		t.Errorf("MaxExportsPerFile = %d, want default", cfg.Rules.MaxExportsPerFile)
	}
}

func TestInitCmd_HeadlessWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := execute(t, "", "init", dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestInitCmd_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("rules:\n  max_exports_per_file: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "init", "--yes", dir)
	if !errors.Is(err, config.ErrConfigExists) {
		t.Fatalf("error = %v, want ErrConfigExists", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "max_exports_per_file: 4") {
		t.Error("existing file must be left untouched")
	}

	if _, _, err := execute(t, "", "init", "--yes", "--force", dir); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	cfg, err := config.NewLoader(nil).WithLookup(noEnv).Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.MaxExportsPerFile != config.DefaultMaxExportsPerFile {
		t.Errorf("--force should overwrite, MaxExportsPerFile = %d", cfg.Rules.MaxExportsPerFile)
	}
}

func TestApplyAnswers(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Rules.Disabled = []models.RuleID{models.RuleEnumCase}

	applyAnswers(cfg, &ui.InitAnswers{
		AllowPascalFilenames: true,
		MaxExportsPerFile:    2,
		Disabled:             []string{"barrel-reexport"},
		Format:               "markdown",
	})

	if !cfg.Rules.AllowPascalFilenames || cfg.Rules.MaxExportsPerFile != 2 {
		t.Errorf("rules = %+v", cfg.Rules)
	}
	if len(cfg.Rules.Disabled) != 1 || cfg.Rules.Disabled[0] != models.RuleBarrelReExport {
		t.Errorf("Disabled = %v", cfg.Rules.Disabled)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
}
