package defs

// Scratch project files used by the configuration wizard.
const (
	// ScratchProject is the empty qmake project opened in Qt Creator.
	ScratchProject = "temp.pro"

	// UserSettingsSuffix is appended by Qt Creator to a project file name
	// to form its per-user settings file (temp.pro -> temp.pro.user).
	UserSettingsSuffix = ".user"
)

// Configuration file locations.
const (
	// AppDirWindows is the directory name under %APPDATA%.
	AppDirWindows = "UnrealQtGenerator"

	// AppDirUnix is the directory name under $XDG_CONFIG_HOME or ~/.config.
	AppDirUnix = "uqgen"

	// ConfigYAML is the configuration file name inside the app directory.
	ConfigYAML = "config.yaml"

	// ScratchSubdir is the directory under os.TempDir() used for the
	// scratch project when none is configured.
	ScratchSubdir = "uqgen"
)

// Environment variable names.
const (
	EnvConfigDir  = "UQGEN_CONFIG_DIR"
	EnvIDE        = "UQGEN_IDE"
	EnvScratchDir = "UQGEN_SCRATCH_DIR"
	EnvLogLevel   = "UQGEN_LOG_LEVEL"
	EnvNoColor    = "UQGEN_NO_COLOR"
)
