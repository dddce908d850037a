package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/pfx3d/internal/config"
)

func liveCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cfgFile, presetName = "", ""
	root := newRootCmd()
	cmd, rest, err := root.Find(append([]string{"live"}, args...))
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.ParseFlags(rest); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pfx3d.yaml")
	fromFile := config.DefaultConfig()
	fromFile.View.Camera = "overhead"
	fromFile.Playback.FPS = 24
	if err := config.Save(file, fromFile); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		args       []string
		wantCamera string
		wantFPS    int
		wantLoop   bool
	}{
		{"defaults", nil, "catcher", 60, true},
		{"preset", []string{"--preset", "review"}, "catcher", 60, false},
		{"flag over preset", []string{"--preset", "mound", "--camera", "overhead"}, "overhead", 60, true},
		{"file", []string{"--config", file}, "overhead", 24, true},
		{"flag over file", []string{"--config", file, "--fps", "30", "--loop=false"}, "overhead", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := liveCmd(t, tt.args...)
			c, err := resolveConfig(cmd)
			if err != nil {
				t.Fatal(err)
			}
			if c.View.Camera != tt.wantCamera {
				t.Errorf("camera = %s, want %s", c.View.Camera, tt.wantCamera)
			}
			if c.Playback.FPS != tt.wantFPS {
				t.Errorf("fps = %d, want %d", c.Playback.FPS, tt.wantFPS)
			}
			if c.Playback.Loop != tt.wantLoop {
				t.Errorf("loop = %v, want %v", c.Playback.Loop, tt.wantLoop)
			}
		})
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"missing file", []string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}},
		{"invalid fps", []string{"--fps", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveConfig(liveCmd(t, tt.args...)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBindFlags_Env(t *testing.T) {
	t.Setenv("PFX3D_RESTART_DELAY", "0.75")
	t.Setenv("PFX3D_THEME", "scorebook")
	viper.Reset()
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	t.Cleanup(viper.Reset)

	cmd := liveCmd(t, "--theme", "daygame")
	bindFlags(cmd, viper.GetViper())

	c, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if c.Playback.RestartDelay != 0.75 {
		t.Errorf("restart delay = %v, want 0.75 from env", c.Playback.RestartDelay)
	}
	if c.View.Theme != "daygame" {
		t.Errorf("theme = %s, command line should beat env", c.View.Theme)
	}
}

func TestLoadPitches(t *testing.T) {
	cfg = config.DefaultConfig()

	pitches, source, err := loadPitches(nil)
	if err != nil {
		t.Fatal(err)
	}
	if source != "sample" || len(pitches) != 4 {
		t.Errorf("got %d pitches from %s", len(pitches), source)
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadPitches([]string{empty}); err == nil {
		t.Error("expected error for a feed without pitches")
	}
}
