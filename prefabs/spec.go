package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/steptoline/render"
	"github.com/milk9111/steptoline/sequencer"
	"gopkg.in/yaml.v3"
)

var ErrUnknownCap = errors.New("prefabs: unknown stroke cap")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// StyleSpec describes how the glyph row looks and animates.
type StyleSpec struct {
	Name       string        `yaml:"name"`
	Background *YAMLColor    `yaml:"background"`
	Stroke     StrokeSpec    `yaml:"stroke"`
	Animation  AnimationSpec `yaml:"animation"`
	// Easing names a script under scripts/. Empty means linear.
	Easing string    `yaml:"easing"`
	Sound  SoundSpec `yaml:"sound"`
}

type StrokeSpec struct {
	Color        *YAMLColor `yaml:"color"`
	WidthDivisor float64    `yaml:"width_divisor"`
	Cap          string     `yaml:"cap"`
	AntiAlias    *bool      `yaml:"anti_alias"`
}

type AnimationSpec struct {
	Step            float64 `yaml:"step"`
	IntervalMS      int     `yaml:"interval_ms"`
	StrictThreshold bool    `yaml:"strict_threshold"`
}

type SoundSpec struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
}

func LoadStyleSpec(name string) (*StyleSpec, error) {
	spec, err := LoadSpec[StyleSpec](cleanPrefabPath(name))
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// AntiAlias reports whether strokes should be anti-aliased. Defaults to true.
func (s *StyleSpec) AntiAlias() bool {
	if s == nil || s.Stroke.AntiAlias == nil {
		return true
	}
	return *s.Stroke.AntiAlias
}

// Config converts the spec into sequencer parameters. Missing values fall
// back to the defaults. The easing script, if any, is compiled here.
func (s *StyleSpec) Config() (sequencer.Config, error) {
	cfg := sequencer.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	if s.Background != nil && s.Background.Color != nil {
		cfg.Style.Background = s.Background.Color
	}
	if s.Stroke.Color != nil && s.Stroke.Color.Color != nil {
		cfg.Style.Stroke = s.Stroke.Color.Color
	}
	if s.Stroke.WidthDivisor > 0 {
		cfg.Style.StrokeDivisor = s.Stroke.WidthDivisor
	}
	lineCap, err := parseCap(s.Stroke.Cap)
	if err != nil {
		return cfg, err
	}
	cfg.Style.Cap = lineCap

	if s.Animation.Step > 0 && s.Animation.Step <= 1 {
		cfg.Step = s.Animation.Step
	}
	if s.Animation.IntervalMS > 0 {
		cfg.Interval = time.Duration(s.Animation.IntervalMS) * time.Millisecond
	}
	cfg.Strict = s.Animation.StrictThreshold

	if strings.TrimSpace(s.Easing) != "" {
		ease, err := LoadEasing(s.Easing)
		if err != nil {
			return cfg, err
		}
		cfg.Style.Ease = ease.Apply
	}

	return cfg, nil
}

func parseCap(v string) (render.LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "round":
		return render.CapRound, nil
	case "butt", "square":
		return render.CapButt, nil
	default:
		return render.CapRound, fmt.Errorf("%w: %q", ErrUnknownCap, v)
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA.
func ParseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
