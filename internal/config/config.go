// Package config handles viewer configuration loading and management.
package config

// Run modes.
const (
	// ModeBase names surface and data files per hemisphere.
	ModeBase = "fs_base"
	// ModeShort builds both hemispheres from shared stems.
	ModeShort = "fs_short"
)

// KindNone skips a hemisphere in ModeBase.
const KindNone = "none"

// Config holds all viewer settings.
type Config struct {
	Scene      SceneConfig      `yaml:"scene"`
	Subject    SubjectConfig    `yaml:"subject"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SceneConfig holds window, camera and rendering settings. It is read once
// at start.
type SceneConfig struct {
	Title       string     `yaml:"title"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Fullscreen  bool       `yaml:"fullscreen"`
	VSync       bool       `yaml:"vsync"`
	Multisample int        `yaml:"multisample"`
	Background  [4]float32 `yaml:"background"` // RGBA in [0, 1]

	RotateSpeed    float32 `yaml:"rotate_speed"`
	PanSpeed       float32 `yaml:"pan_speed"`
	KeyZoomSpeed   float32 `yaml:"key_zoom_speed"`
	WheelZoomSpeed float32 `yaml:"wheel_zoom_speed"`
	// AutoRotateSpeed is in radians per millisecond.
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	Framing         float32 `yaml:"framing"`

	Lighting   bool    `yaml:"lighting"`
	Ambient    float32 `yaml:"ambient"`
	ShowBounds bool    `yaml:"show_bounds"`
}

// HemisphereConfig names the files for one hemisphere in ModeBase.
type HemisphereConfig struct {
	Surface string `yaml:"surface"`
	Kind    string `yaml:"kind"` // curv, annot, label or none
	Data    string `yaml:"data"`
}

// SubjectConfig selects the subject directory and what to display.
type SubjectConfig struct {
	BaseDir string `yaml:"base_dir"`
	Mode    string `yaml:"mode"`

	Left  HemisphereConfig `yaml:"left"`
	Right HemisphereConfig `yaml:"right"`

	// Shared stems for ModeShort.
	Surface string `yaml:"surface"`
	Data    string `yaml:"data"`
	Kind    string `yaml:"kind"`

	Gradient        string   `yaml:"gradient"`
	UnmatchedRegion int      `yaml:"unmatched_region"`
	InsideColor     [4]uint8 `yaml:"inside_color"`
	OutsideColor    [4]uint8 `yaml:"outside_color"`
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Title:           "brainview",
			Width:           1280,
			Height:          720,
			VSync:           true,
			Multisample:     4,
			Background:      [4]float32{1, 1, 1, 1},
			RotateSpeed:     3.0,
			PanSpeed:        5.0,
			KeyZoomSpeed:    5.0,
			WheelZoomSpeed:  5.0,
			AutoRotateSpeed: 0.0005,
			AutoRotate:      true,
			Framing:         3.0,
			Lighting:        true,
			Ambient:         0.35,
		},
		Subject: SubjectConfig{
			BaseDir:      ".",
			Mode:         ModeBase,
			Left:         HemisphereConfig{Surface: "lh.white", Kind: "curv", Data: "lh.thickness"},
			Right:        HemisphereConfig{Surface: "rh.white", Kind: "curv", Data: "rh.thickness"},
			Surface:      "white",
			Data:         "thickness",
			Kind:         "curv",
			Gradient:     "Viridis",
			InsideColor:  [4]uint8{255, 0, 0, 255},
			OutsideColor: [4]uint8{255, 255, 255, 255},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "brainview",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
