package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds sketch defaults that can be kept in a TOML or YAML file:
//
//	width = 640
//	height = 480
//	device = "raster"
//	background = "#202020"
//	fill = "#ff8000"
//	stroke = "none"
//	ellipse_mode = "corner"
//	ellipse_detail = 64
//	sphere_ures = 24
//	sphere_vres = 24
//	perspective = true
//
// Colors use the forms accepted by ParseHex.
type Config struct {
	Width         int    `toml:"width" yaml:"width"`
	Height        int    `toml:"height" yaml:"height"`
	Device        string `toml:"device" yaml:"device"`
	Background    string `toml:"background" yaml:"background"`
	Fill          string `toml:"fill" yaml:"fill"`
	Stroke        string `toml:"stroke" yaml:"stroke"`
	EllipseMode   string `toml:"ellipse_mode" yaml:"ellipse_mode"`
	EllipseDetail int    `toml:"ellipse_detail" yaml:"ellipse_detail"`
	SphereURes    int    `toml:"sphere_ures" yaml:"sphere_ures"`
	SphereVRes    int    `toml:"sphere_vres" yaml:"sphere_vres"`
	Perspective   bool   `toml:"perspective" yaml:"perspective"`
}

// DefaultConfig returns the settings a Sketch starts with.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		Device:        "raster",
		Background:    "#c8c8c8",
		Fill:          White.String(),
		Stroke:        Black.String(),
		EllipseMode:   Center.String(),
		EllipseDetail: DefaultEllipseDetail,
		SphereURes:    DefaultSphereDetail,
		SphereVRes:    DefaultSphereDetail,
	}
}

// LoadConfig reads a config file. The format is chosen by extension:
// .toml, or .yaml/.yml. Settings missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sketch: load config: %w", err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data), filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("sketch: load config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a config in the given format ("toml", "yaml" or
// "yml", with or without a leading dot). Unknown keys are an error.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sketch: config: size %dx%d must be positive", c.Width, c.Height)
	}
	colors := []struct{ name, value string }{
		{"background", c.Background},
		{"fill", c.Fill},
		{"stroke", c.Stroke},
	}
	for _, col := range colors {
		if _, err := ParseHex(col.value); err != nil {
			return fmt.Errorf("sketch: config %s: %w", col.name, err)
		}
	}
	if _, err := ParseEllipseMode(c.EllipseMode); err != nil {
		return fmt.Errorf("sketch: config: %w", err)
	}
	if c.EllipseDetail < 3 {
		return fmt.Errorf("sketch: config: %w: ellipse_detail %d", ErrInvalidDetail, c.EllipseDetail)
	}
	if c.SphereURes < 2 || c.SphereVRes < 2 {
		return fmt.Errorf("sketch: config: %w: sphere %dx%d", ErrInvalidDetail, c.SphereURes, c.SphereVRes)
	}
	return nil
}

// BackgroundColor returns the parsed background color, or the default gray
// if it does not parse.
func (c Config) BackgroundColor() Color {
	bg, err := ParseHex(c.Background)
	if err != nil {
		Logger().Warn("sketch: config: bad background, using default", "value", c.Background)
		return Gray(200)
	}
	return bg
}

// Options converts the config into sketch options. Settings that do not
// parse are logged and skipped.
func (c Config) Options() []Option {
	log := Logger()
	var opts []Option

	if fill, err := ParseHex(c.Fill); err == nil {
		opts = append(opts, WithFill(fill))
	} else {
		log.Warn("sketch: config: ignoring fill", "error", err)
	}
	if stroke, err := ParseHex(c.Stroke); err == nil {
		opts = append(opts, WithStroke(stroke))
	} else {
		log.Warn("sketch: config: ignoring stroke", "error", err)
	}
	if mode, err := ParseEllipseMode(c.EllipseMode); err == nil {
		opts = append(opts, WithEllipseMode(mode))
	} else {
		log.Warn("sketch: config: ignoring ellipse_mode", "error", err)
	}
	if c.EllipseDetail >= 3 {
		opts = append(opts, WithEllipseDetail(c.EllipseDetail))
	} else {
		log.Warn("sketch: config: ignoring ellipse_detail", "value", c.EllipseDetail)
	}
	if c.SphereURes >= 2 && c.SphereVRes >= 2 {
		opts = append(opts, WithSphereDetail(c.SphereURes, c.SphereVRes))
	} else {
		log.Warn("sketch: config: ignoring sphere detail", "ures", c.SphereURes, "vres", c.SphereVRes)
	}
	return opts
}
