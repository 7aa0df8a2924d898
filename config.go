package scrollbar

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/scrollbar/anim"
)

// DefaultConfigFile is the name the CLI reads and writes.
const DefaultConfigFile = "scrollbar.toml"

// Config represents the scrollbar.toml configuration file
type Config struct {
	ScrollBar ScrollBarConfig `toml:"scrollbar"`
	Haptics   HapticsConfig   `toml:"haptics"`
	Demo      DemoConfig      `toml:"demo"`
}

type ScrollBarConfig struct {
	Style Style `toml:"style"`
	// Shorten the track while a large title collapses
	InsetForLargeTitles bool `toml:"inset_for_large_titles"`
	// Duration of the track-tap and rest animations
	AnimationMS int `toml:"animation_ms"`
	// Easing curve name (spring, cubic, linear, ease-out, ease-in-out)
	Easing string `toml:"easing"`
	// Extra points above and below the handle that still grab it
	HandleTolerance float32 `toml:"handle_tolerance"`
	TapAreaWidth    float32 `toml:"tap_area_width"`
}

// HapticsConfig names a shared library exporting a pulse function.
// Leave Library empty to disable haptics.
type HapticsConfig struct {
	Library string `toml:"library"`
	Symbol  string `toml:"symbol"`
}

type DemoConfig struct {
	Rows      int     `toml:"rows"`
	RowHeight float32 `toml:"row_height"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		ScrollBar: ScrollBarConfig{
			Style:           StyleClassic,
			AnimationMS:     500,
			Easing:          "spring",
			HandleTolerance: 20,
			TapAreaWidth:    TapAreaWidth,
		},
		Haptics: HapticsConfig{
			Symbol: "haptic_feedback",
		},
		Demo: DemoConfig{
			Rows:      100,
			RowHeight: 16,
		},
	}
}

// Animation returns the configured animation duration.
func (c ScrollBarConfig) Animation() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// EasingFunc returns the configured easing curve.
func (c ScrollBarConfig) EasingFunc() anim.EasingFunc {
	if fn := anim.EasingByName(c.Easing); fn != nil {
		return fn
	}
	return anim.EaseSpring
}

// Validate reports the first invalid value in c.
func (c Config) Validate() error {
	if c.ScrollBar.AnimationMS < 0 {
		return fmt.Errorf("animation_ms must not be negative, got %d", c.ScrollBar.AnimationMS)
	}
	if anim.EasingByName(c.ScrollBar.Easing) == nil {
		return fmt.Errorf("unknown easing %q", c.ScrollBar.Easing)
	}
	if c.ScrollBar.HandleTolerance < 0 {
		return fmt.Errorf("handle_tolerance must not be negative, got %v", c.ScrollBar.HandleTolerance)
	}
	if c.ScrollBar.TapAreaWidth < 0 {
		return fmt.Errorf("tap_area_width must not be negative, got %v", c.ScrollBar.TapAreaWidth)
	}
	if c.Demo.Rows < 0 {
		return fmt.Errorf("demo rows must not be negative, got %d", c.Demo.Rows)
	}
	return nil
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	defaults := DefaultConfig()
	if config.ScrollBar.TapAreaWidth == 0 {
		config.ScrollBar.TapAreaWidth = defaults.ScrollBar.TapAreaWidth
	}
	if config.Haptics.Symbol == "" {
		config.Haptics.Symbol = defaults.Haptics.Symbol
	}
	if config.Demo.RowHeight == 0 {
		config.Demo.RowHeight = defaults.Demo.RowHeight
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
