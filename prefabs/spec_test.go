package prefabs

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/steptoline/common"
	"github.com/milk9111/steptoline/render"
	"gopkg.in/yaml.v3"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", "#ef5350", color.NRGBA{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF}, false},
		{"rgba", "#BDBDBD80", color.NRGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0x80}, false},
		{"no_hash", "000000", color.NRGBA{A: 0xFF}, false},
		{"short", "#fff", nil, true},
		{"not_hex", "#zzzzzz", nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestYAMLColorRejectsNonScalar(t *testing.T) {
	var out struct {
		C YAMLColor `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: [1, 2]"), &out); err == nil {
		t.Fatalf("expected error for sequence colour")
	}
}

func TestLoadDefaultStyle(t *testing.T) {
	spec, err := LoadStyleSpec("")
	if err != nil {
		t.Fatalf("load default style: %v", err)
	}
	if spec.Name != "steptoline" {
		t.Fatalf("unexpected style name %q", spec.Name)
	}

	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Step != common.DefaultStep || cfg.Interval != common.DefaultInterval {
		t.Fatalf("unexpected animation config: %+v", cfg)
	}
	if cfg.Style.Background != render.DefaultStyle().Background {
		t.Fatalf("unexpected background %v", cfg.Style.Background)
	}
	if cfg.Style.Stroke != render.DefaultStyle().Stroke {
		t.Fatalf("unexpected stroke %v", cfg.Style.Stroke)
	}
	if cfg.Style.Cap != render.CapRound || cfg.Style.Ease != nil {
		t.Fatalf("expected round cap and linear easing")
	}
	if !spec.AntiAlias() {
		t.Fatalf("expected anti-aliasing")
	}
}

func TestLoadSmoothStyle(t *testing.T) {
	spec, err := LoadStyleSpec("prefabs/smooth.yaml")
	if err != nil {
		t.Fatalf("load smooth style: %v", err)
	}
	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Interval != 30*time.Millisecond || cfg.Step != 0.04 {
		t.Fatalf("unexpected animation config: %+v", cfg)
	}
	if cfg.Style.Ease == nil {
		t.Fatalf("expected easing function")
	}
	if got := cfg.Style.Ease(0.5); got != 0.5 {
		t.Fatalf("smoothstep(0.5) = %v, want 0.5", got)
	}
	if !spec.Sound.Enabled {
		t.Fatalf("expected sound enabled")
	}
}

func TestStyleConfigErrors(t *testing.T) {
	spec := &StyleSpec{Stroke: StrokeSpec{Cap: "triangle"}}
	if _, err := spec.Config(); !errors.Is(err, ErrUnknownCap) {
		t.Fatalf("expected ErrUnknownCap, got %v", err)
	}

	spec = &StyleSpec{Easing: "missing.tengo"}
	if _, err := spec.Config(); err == nil {
		t.Fatalf("expected error for missing easing script")
	}

	var nilSpec *StyleSpec
	if _, err := nilSpec.Config(); err != nil {
		t.Fatalf("nil spec should give defaults, got %v", err)
	}
}

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{cleanPrefabPath, "", DefaultStyle},
		{cleanPrefabPath, "prefabs/smooth.yaml", "smooth.yaml"},
		{cleanPrefabPath, "smooth.yaml", "smooth.yaml"},
		{cleanScriptPath, "smoothstep.tengo", "scripts/smoothstep.tengo"},
		{cleanScriptPath, "prefabs/scripts/smoothstep.tengo", "scripts/smoothstep.tengo"},
		{cleanScriptPath, "", ""},
	}
	for _, c := range cases {
		if got := c.fn(c.in); got != c.want {
			t.Fatalf("clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
