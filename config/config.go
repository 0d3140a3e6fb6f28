package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds runtime configuration for capture negotiation and display.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Preferred capture settings, applied best-effort during negotiation.
	CaptureWidth  int    `json:"capture_width"`
	CaptureHeight int    `json:"capture_height"`
	CaptureFPS    int    `json:"capture_fps"`
	FourCC        string `json:"fourcc"`

	// Startup validation budget.
	ReadAttempts int `json:"read_attempts"`
	ReadDelayMS  int `json:"read_delay_ms"`

	// Display window.
	WindowName   string `json:"window_name"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	QuitKeyName  string `json:"quit_key"`
}

// DefaultConfig returns a Config populated with the standard capture profile.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		CaptureWidth:  1920,
		CaptureHeight: 1080,
		CaptureFPS:    30,
		FourCC:        "MJPG",
		ReadAttempts:  10,
		ReadDelayMS:   20,
		WindowName:    "Webcam Feed",
		WindowWidth:   1280,
		WindowHeight:  720,
		QuitKeyName:   "q",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CaptureWidth <= 0 {
		c.CaptureWidth = 1920
	}
	if c.CaptureHeight <= 0 {
		c.CaptureHeight = 1080
	}
	if c.CaptureFPS <= 0 {
		c.CaptureFPS = 30
	}
	if len(c.FourCC) != 4 {
		c.FourCC = "MJPG"
	}
	if c.ReadAttempts <= 0 {
		c.ReadAttempts = 10
	}
	if c.ReadDelayMS < 0 {
		c.ReadDelayMS = 20
	}
	if c.WindowName == "" {
		c.WindowName = "Webcam Feed"
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = 1280
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 720
	}
	if len(c.QuitKeyName) != 1 {
		c.QuitKeyName = "q"
	}
	return nil
}

// ReadDelay returns the inter-attempt startup read delay as a duration.
func (c *Config) ReadDelay() time.Duration {
	return time.Duration(c.ReadDelayMS) * time.Millisecond
}

// QuitKey returns the key code that exits the display loop.
func (c *Config) QuitKey() byte {
	return c.QuitKeyName[0]
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
