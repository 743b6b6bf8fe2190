package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	CellWidth     int
	CellHeight    int
	BrushSize     float64
	Palette       []color.RGBA
	DoubleClick   time.Duration
	LogFile       string
	LogLevel      string
}

func defaultConfigPath() string {
	if p := os.Getenv("PITCHBOARD_CONFIG"); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".pitchboard.yaml")
}

// loadConfig reads path over the built-in defaults. A missing file is not an
// error; PITCHBOARD_* environment variables override both.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("saveDirectory", "")
	v.SetDefault("confirmations", true)
	v.SetDefault("cellWidth", 8)
	v.SetDefault("cellHeight", 16)
	v.SetDefault("brush.size", 4)
	v.SetDefault("brush.palette", []string{"#ffeb3b", "#ffffff", "#000000", "#ff9800", "#00e5ff", "#e040fb"})
	v.SetDefault("doubleClick", "400ms")
	v.SetDefault("logFile", "")
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix("PITCHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	config := &Config{
		SaveDirectory: expandPath(v.GetString("saveDirectory")),
		Confirmations: v.GetBool("confirmations"),
		CellWidth:     v.GetInt("cellWidth"),
		CellHeight:    v.GetInt("cellHeight"),
		BrushSize:     v.GetFloat64("brush.size"),
		DoubleClick:   v.GetDuration("doubleClick"),
		LogFile:       expandPath(v.GetString("logFile")),
		LogLevel:      v.GetString("logLevel"),
	}
	if config.CellWidth < 2 || config.CellHeight < 2 {
		return nil, fmt.Errorf("config: cell size %dx%d is too small", config.CellWidth, config.CellHeight)
	}

	for _, hex := range v.GetStringSlice("brush.palette") {
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("config: palette entry %q: %w", hex, err)
		}
		config.Palette = append(config.Palette, c)
	}
	if len(config.Palette) == 0 {
		return nil, fmt.Errorf("config: brush.palette is empty")
	}
	return config, nil
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func parseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
