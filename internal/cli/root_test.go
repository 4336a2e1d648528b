package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/ccollicutt/areaplot/pkg/config"
)

func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{"plot", "inspect", "validate", "version"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (found %v, err %v)", name, cmd, err)
		}
	}

	for _, flag := range []string{"log-level", "log-format"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag: %s", flag)
		}
	}
}

func TestRootCommand_DefaultRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvDPI, "10")

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	files := map[string]string{
		"wide_area.txt":   "N = 10; S = 2.5\nN = 20; S = 1.1\nN = 30; S = -0.3\n",
		"narrow_area.txt": "N = 10; S = 0.5\nN = 20; S = 0.2\nN = 30; S = 0.1\n",
	}
	for name, content := range files {
		data, err := enc.String(content)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}

	root := NewRootCommand()
	root.SetArgs([]string{"--log-level", "warn"})
	var buf bytes.Buffer
	root.SetOut(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, config.DefaultOutput))
	if err != nil {
		t.Fatalf("default output not written: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	// 15x10 inches at 10 DPI
	if cfg.Width != 150 || cfg.Height != 100 {
		t.Errorf("image size = %dx%d, want 150x100", cfg.Width, cfg.Height)
	}
	if !strings.Contains(buf.String(), config.DefaultOutput) {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestRootCommand_MissingInputFails(t *testing.T) {
	t.Chdir(t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	if err == nil {
		t.Fatal("Execute() expected error without input files")
	}
	if !strings.Contains(err.Error(), "wide_area.txt") && !strings.Contains(err.Error(), "narrow_area.txt") {
		t.Errorf("error does not name the missing file: %v", err)
	}
}

func TestRootCommand_InvalidLogFlags(t *testing.T) {
	tests := [][]string{
		{"--log-level", "loud", "version"},
		{"--log-format", "xml", "version"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			root := NewRootCommand()
			root.SetArgs(args)
			root.SetOut(&bytes.Buffer{})
			if err := root.Execute(); err == nil {
				t.Errorf("Execute(%v) expected error", args)
			}
		})
	}
}
