package config

import (
	"flag"
	"os"
)

// EnvSubject names the environment variable holding the subject directory.
const EnvSubject = "FS_SUBJECT"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")

	flagBaseDir = flag.String("basedir", "", "FreeSurfer subject directory (default $"+EnvSubject+" or .)")
	flagMode    = flag.String("mode", "", "Run mode: fs_base or fs_short")

	flagLeftSurf     = flag.String("left-surf", "", "Left hemisphere surface file (fs_base)")
	flagRightSurf    = flag.String("right-surf", "", "Right hemisphere surface file (fs_base)")
	flagLeftVisType  = flag.String("left-vis-type", "", "Left hemisphere data kind: curv, annot, label or none (fs_base)")
	flagRightVisType = flag.String("right-vis-type", "", "Right hemisphere data kind: curv, annot, label or none (fs_base)")
	flagLeftVis      = flag.String("left-vis", "", "Left hemisphere data file (fs_base)")
	flagRightVis     = flag.String("right-vis", "", "Right hemisphere data file (fs_base)")

	flagSurf    = flag.String("surf", "", "Surface stem for both hemispheres, e.g. white (fs_short)")
	flagVis     = flag.String("vis", "", "Data stem for both hemispheres, e.g. thickness (fs_short)")
	flagVisType = flag.String("vis-type", "", "Data kind for both hemispheres: curv, annot or label (fs_short)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyEnv applies environment overrides, which rank between the file and
// flags.
func applyEnv(cfg *Config) {
	if dir := os.Getenv(EnvSubject); dir != "" {
		cfg.Subject.BaseDir = dir
	}
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFullscreen {
		cfg.Scene.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Scene.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Scene.Height = *flagHeight
	}

	s := &cfg.Subject
	setString(&s.BaseDir, *flagBaseDir)
	setString(&s.Mode, *flagMode)
	setString(&s.Left.Surface, *flagLeftSurf)
	setString(&s.Right.Surface, *flagRightSurf)
	setString(&s.Left.Kind, *flagLeftVisType)
	setString(&s.Right.Kind, *flagRightVisType)
	setString(&s.Left.Data, *flagLeftVis)
	setString(&s.Right.Data, *flagRightVis)
	setString(&s.Surface, *flagSurf)
	setString(&s.Data, *flagVis)
	setString(&s.Kind, *flagVisType)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
