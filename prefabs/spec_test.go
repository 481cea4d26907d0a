package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/floater/controller"
)

func TestDecodePlayerSpecOverlaysDefaults(t *testing.T) {
	spec, err := DecodePlayerSpec([]byte(`
name: heavy
tuning:
  mass: 3
  suspension: spring
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := controller.DefaultConfig()
	want.Mass = 3
	want.Suspension = controller.SuspensionSpring
	if spec.Tuning != want {
		t.Fatalf("tuning = %+v, want %+v", spec.Tuning, want)
	}
	if spec.Name != "heavy" || spec.Input.TurnSpeed != defaultTurnSpeed {
		t.Fatalf("unexpected spec %+v", spec)
	}
}

func TestDecodePlayerSpecRejectsInvalidTuning(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero_mass", "tuning:\n  mass: 0\n"},
		{"steep_limit", "tuning:\n  max_slope_degrees: 95\n"},
		{"unknown_mode", "tuning:\n  suspension: hover\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePlayerSpec([]byte(tt.yaml))
			if !errors.Is(err, controller.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadEmbeddedPlayer(t *testing.T) {
	spec, err := LoadPlayerSpec("player.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Tuning != controller.DefaultConfig() {
		t.Fatalf("embedded player tuning drifted from defaults: %+v", spec.Tuning)
	}
}

func TestLoadEmbeddedScene(t *testing.T) {
	spec, err := LoadSceneSpec("prefabs/scene.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.TickRate != 60 || len(spec.Terrain) != 5 || len(spec.Platforms) != 2 {
		t.Fatalf("unexpected scene %+v", spec)
	}
	if spec.Player.At != (Point{X: 0, Y: 2.5}) {
		t.Fatalf("spawn = %+v", spec.Player.At)
	}
	ferry := spec.Platforms[0]
	if len(ferry.Waypoints) != 2 || ferry.Waypoints[1] != (Point{X: 45, Y: 3}) {
		t.Fatalf("ferry waypoints = %+v", ferry.Waypoints)
	}
}

func TestDecodeSceneSpec(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"defaults", "name: empty\n", ""},
		{"mapping_point", "player:\n  at: {x: 1, y: 2}\n", ""},
		{"short_point", "player:\n  at: [1]\n", "2 components"},
		{"bad_tick_rate", "tick_rate: -1\n", "tick_rate"},
		{"unknown_terrain", "terrain:\n  - name: x\n    kind: blob\n", "unknown kind"},
		{"flat_box", "terrain:\n  - name: x\n    kind: box\n    width: 1\n", "positive size"},
		{"flat_platform", "platforms:\n  - name: p\n    width: 0\n    height: 1\n", "positive size"},
		{"partial_camera", "camera:\n  zoom: 20\n", ""},
		{"zero_zoom", "camera:\n  zoom: 0\n", "zoom"},
		{"camera_overshoot", "camera:\n  smoothness: 1.5\n", "smoothness"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := DecodeSceneSpec([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if spec.TickRate != 60 || spec.Player.Prefab != "player.yaml" {
					t.Fatalf("defaults not applied: %+v", spec)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	spec, _ := DecodeSceneSpec([]byte("player:\n  at: {x: 1, y: 2}\n"))
	if spec.Player.At != (Point{X: 1, Y: 2}) {
		t.Fatalf("mapping point = %+v", spec.Player.At)
	}
	if spec.Camera.Zoom != 40 || spec.Camera.Smoothness != 0.15 {
		t.Fatalf("camera defaults = %+v", spec.Camera)
	}
	if dt := spec.Dt(); dt != 1.0/60.0 {
		t.Fatalf("dt = %v", dt)
	}
}

func TestLoadSpecGeneric(t *testing.T) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "proving_ground" {
		t.Fatalf("name = %q", spec.Name)
	}
	if _, err := LoadSpec[SceneSpec]("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestScriptPaths(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"walk_right", "scripts/walk_right.tengo"},
		{"walk_right.tengo", "scripts/walk_right.tengo"},
		{"scripts/idle.tengo", "scripts/idle.tengo"},
		{"prefabs/scripts/idle.tengo", "scripts/idle.tengo"},
		{"/home/dev/game/prefabs/scripts/idle.tengo", "scripts/idle.tengo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanScriptPath(tt.in); got != tt.want {
				t.Fatalf("cleanScriptPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	src, err := LoadScript("walk_right")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if !strings.Contains(string(src), "right = true") {
		t.Fatalf("unexpected script %q", src)
	}
}

func TestWatcherReportsPrefabWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(10*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "player.yaml" {
			t.Fatalf("unexpected event for %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	for range w.Events {
	}
}
