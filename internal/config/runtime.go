package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/linuxmatters/rankhist/internal/errs"
	"gopkg.in/yaml.v3"
)

// RuntimeConfig holds optional appearance overrides loaded from a YAML file.
// Zero values mean "use the default constant".
type RuntimeConfig struct {
	BarColor        string `yaml:"bar_color"`
	TextColor       string `yaml:"text_color"`
	BackgroundColor string `yaml:"background_color"`
	GridColor       string `yaml:"grid_color"`
	LightGridColor  string `yaml:"light_grid_color"`

	TitleFontSize *float64 `yaml:"title_font_size"`
	LabelFontSize *float64 `yaml:"label_font_size"`
	AxisFontSize  *float64 `yaml:"axis_font_size"`
	Margin        *int     `yaml:"margin"`
}

// LoadRuntimeConfig reads and validates a YAML appearance file.
// An empty file yields an empty config.
func LoadRuntimeConfig(path string) (*RuntimeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening config %s: %w", errs.ErrIO, path, err)
	}
	defer f.Close()

	rc, err := DecodeRuntimeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return rc, nil
}

// DecodeRuntimeConfig decodes YAML from r. Unknown keys are rejected.
func DecodeRuntimeConfig(r io.Reader) (*RuntimeConfig, error) {
	rc := &RuntimeConfig{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(rc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errs.ErrParse, err)
	}

	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// Validate checks every set field.
func (c *RuntimeConfig) Validate() error {
	colors := []struct {
		key, value string
	}{
		{"bar_color", c.BarColor},
		{"text_color", c.TextColor},
		{"background_color", c.BackgroundColor},
		{"grid_color", c.GridColor},
		{"light_grid_color", c.LightGridColor},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, _, _, err := ParseHexColor(col.value); err != nil {
			return fmt.Errorf("%w: %s: %w", errs.ErrValidation, col.key, err)
		}
	}

	sizes := []struct {
		key   string
		value *float64
	}{
		{"title_font_size", c.TitleFontSize},
		{"label_font_size", c.LabelFontSize},
		{"axis_font_size", c.AxisFontSize},
	}
	for _, s := range sizes {
		if s.value != nil && *s.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", errs.ErrValidation, s.key, *s.value)
		}
	}

	if c.Margin != nil && *c.Margin < 0 {
		return fmt.Errorf("%w: margin must not be negative, got %d", errs.ErrValidation, *c.Margin)
	}
	return nil
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB".
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hexStr := strings.TrimPrefix(s, "#")
	if len(hexStr) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return raw[0], raw[1], raw[2], nil
}

// colorOr returns the parsed override, or the default when unset or invalid.
func colorOr(override string, r, g, b uint8) color.RGBA {
	if override != "" {
		if or, og, ob, err := ParseHexColor(override); err == nil {
			return color.RGBA{R: or, G: og, B: ob, A: 255}
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// GetBarColor returns the bar fill colour.
func (c *RuntimeConfig) GetBarColor() color.RGBA {
	return colorOr(c.BarColor, BarColorR, BarColorG, BarColorB)
}

// GetTextColor returns the colour for title, labels and axis lines.
func (c *RuntimeConfig) GetTextColor() color.RGBA {
	return colorOr(c.TextColor, TextColorR, TextColorG, TextColorB)
}

// GetBackgroundColor returns the canvas fill colour.
func (c *RuntimeConfig) GetBackgroundColor() color.RGBA {
	return colorOr(c.BackgroundColor, BackgroundColorR, BackgroundColorG, BackgroundColorB)
}

// GetGridColor returns the bold mesh colour.
func (c *RuntimeConfig) GetGridColor() color.RGBA {
	return colorOr(c.GridColor, GridColorR, GridColorG, GridColorB)
}

// GetLightGridColor returns the light mesh colour.
func (c *RuntimeConfig) GetLightGridColor() color.RGBA {
	return colorOr(c.LightGridColor, LightGridColorR, LightGridColorG, LightGridColorB)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// GetTitleFontSize returns the caption font size.
func (c *RuntimeConfig) GetTitleFontSize() float64 {
	return floatOr(c.TitleFontSize, TitleFontSize)
}

// GetLabelFontSize returns the tick label font size.
func (c *RuntimeConfig) GetLabelFontSize() float64 {
	return floatOr(c.LabelFontSize, LabelFontSize)
}

// GetAxisFontSize returns the axis description font size.
func (c *RuntimeConfig) GetAxisFontSize() float64 {
	return floatOr(c.AxisFontSize, AxisFontSize)
}

// GetMargin returns the outer margin in pixels.
func (c *RuntimeConfig) GetMargin() int {
	if c.Margin == nil {
		return Margin
	}
	return *c.Margin
}
