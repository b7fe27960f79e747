package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gridctl/greet/pkg/config"
	"github.com/gridctl/greet/pkg/greeting"
	"github.com/gridctl/greet/pkg/output"
)

func testConfig(t *testing.T, wait bool) *config.Config {
	t.Helper()
	zero := config.Duration(0)
	cfg := &config.Config{User: "alice", Delay: &zero, Wait: &wait, Color: "never"}
	cfg.SetDefaults()
	return cfg
}

func TestRunGreet_NoWait(t *testing.T) {
	var out, diag bytes.Buffer
	cfg := testConfig(t, false)

	if err := runGreet(cfg, &out, nil, output.NewWithWriter(&diag)); err != nil {
		t.Fatalf("runGreet() error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Welcome, alice!") {
		t.Errorf("expected welcome line, got %q", got)
	}
	if !strings.Contains(got, greeting.Message) {
		t.Errorf("expected greeting message, got %q", got)
	}
	if strings.Contains(got, greeting.ExitPrompt) {
		t.Error("exit prompt should not be shown with wait disabled")
	}
	if strings.Contains(got, "\x1b") {
		t.Error("color=never should not emit escape sequences")
	}
}

func TestRunGreet_WaitsForKey(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	if _, err := w.Write([]byte("q")); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	var out, diag bytes.Buffer
	if err := runGreet(testConfig(t, true), &out, r, output.NewWithWriter(&diag)); err != nil {
		t.Fatalf("runGreet() error: %v", err)
	}

	if !strings.HasSuffix(out.String(), greeting.ExitPrompt+"\n") {
		t.Errorf("expected output to end with exit prompt, got %q", out.String())
	}
}

func TestRunGreet_VerboseLogsToDiagnostics(t *testing.T) {
	var out, diag bytes.Buffer
	printer := output.NewWithWriter(&diag)
	printer.SetDebug(true)

	if err := runGreet(testConfig(t, false), &out, nil, printer); err != nil {
		t.Fatalf("runGreet() error: %v", err)
	}

	if !strings.Contains(diag.String(), "resolved settings") {
		t.Errorf("expected debug diagnostics, got %q", diag.String())
	}
	if strings.Contains(out.String(), "DEBU") {
		t.Error("diagnostics must not be written to the greeting output")
	}
}

func TestRunGreet_BadColor(t *testing.T) {
	cfg := testConfig(t, false)
	cfg.Color = "sometimes"

	var out, diag bytes.Buffer
	if err := runGreet(cfg, &out, nil, output.NewWithWriter(&diag)); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestApplyFlags(t *testing.T) {
	if err := rootCmd.ParseFlags([]string{"--user", "zoe", "--delay", "5ms", "--no-wait", "--color", "always"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg := config.Default()
	applyFlags(rootCmd, cfg)

	if cfg.User != "zoe" {
		t.Errorf("expected user 'zoe', got '%s'", cfg.User)
	}
	if cfg.DelayDuration().Milliseconds() != 5 {
		t.Errorf("expected delay 5ms, got %s", cfg.DelayDuration())
	}
	if cfg.ShouldWait() {
		t.Error("expected --no-wait to disable waiting")
	}
	if cfg.Color != "always" {
		t.Errorf("expected color 'always', got '%s'", cfg.Color)
	}
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.2.3", "v1.2.3"},
		{"v0.4.0", "v0.4.0"},
		{"1.0.0-rc.1", "v1.0.0-rc.1"},
		{"dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := displayVersion(tt.input); got != tt.want {
				t.Errorf("displayVersion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaletteEntries(t *testing.T) {
	rainbow := rainbowEntries()
	if len(rainbow) != 6 {
		t.Fatalf("expected 6 rainbow entries, got %d", len(rainbow))
	}
	if rainbow[0].Name != "red" || rainbow[0].Index != 9 {
		t.Errorf("expected bright red (9) first, got %+v", rainbow[0])
	}

	accents := accentEntries()
	if accents[0].Name != "cyan" || accents[0].Role != "border" {
		t.Errorf("expected cyan border accent, got %+v", accents[0])
	}
}

func TestResolveSettings_FlagsOverrideEnv(t *testing.T) {
	for _, key := range []string{config.EnvUser, config.EnvNoColor} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvDelay, "10s")
	t.Setenv(config.EnvColor, "rainbow")

	if err := rootCmd.ParseFlags([]string{"--delay", "0s", "--color", "never", "--no-wait", "--user", "alice"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	cfg, err := resolveSettings(rootCmd)
	if err != nil {
		t.Fatalf("flags should replace invalid env values, got %v", err)
	}
	if cfg.DelayDuration() != 0 {
		t.Errorf("expected flag delay 0s, got %s", cfg.DelayDuration())
	}
	if cfg.Color != "never" {
		t.Errorf("expected flag color 'never', got '%s'", cfg.Color)
	}
}

func TestReportError(t *testing.T) {
	var diag bytes.Buffer
	reportError(output.NewWithWriter(&diag), errors.New("stdin closed"))

	got := diag.String()
	// charmbracelet/log uses "ERRO" abbreviation
	if !strings.Contains(got, "ERRO") || !strings.Contains(got, "stdin closed") {
		t.Errorf("expected error line with cause, got %q", got)
	}
}
