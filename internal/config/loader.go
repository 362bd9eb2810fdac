package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".crumbs.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/crumbs"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path. Keys missing from the file
// keep their default values.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'crumbs init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .crumbs.yaml in current directory
// 3. .crumbs.yaml in parent directories (stops at git root or home)
// 4. ~/.config/crumbs/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrIO,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	if path := findUpwards(cwd); path != "" {
		return path, nil
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// findUpwards looks for ConfigFileName in dir and its parents, stopping at
// the first git root, the home directory or the filesystem root.
func findUpwards(dir string) string {
	home, _ := os.UserHomeDir()
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		if isGitRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		if home != "" && parent == home {
			return ""
		}
		dir = parent
	}
}

// LoadOrDefault loads config from the found path, or returns defaults if
// nothing was found. The returned path is empty in the latter case.
func LoadOrDefault(explicit string) (*File, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// parseConfig converts viper config to a File with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*File, error) {
	setDefaults(v)

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// setDefaults registers every scalar default so partial files merge cleanly.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("version", def.Version)
	v.SetDefault("steps", def.Steps)
	v.SetDefault("current", def.Current)
	v.SetDefault("separator_on_start", def.SeparatorOnStart)

	v.SetDefault("dot.radius", def.Dot.Radius)
	v.SetDefault("dot.border", def.Dot.Border)
	v.SetDefault("dot.visited.border", def.Dot.Visited.Border)
	v.SetDefault("dot.visited.fill", def.Dot.Visited.Fill)
	v.SetDefault("dot.next.border", def.Dot.Next.Border)
	v.SetDefault("dot.next.fill", def.Dot.Next.Fill)

	v.SetDefault("separator.height", def.Separator.Height)
	v.SetDefault("separator.visited", def.Separator.Visited)
	v.SetDefault("separator.next", def.Separator.Next)

	v.SetDefault("label.size", def.Label.Size)
	v.SetDefault("label.top_margin", def.Label.TopMargin)
	v.SetDefault("label.visited", def.Label.Visited)
	v.SetDefault("label.next", def.Label.Next)

	v.SetDefault("animation.fps", def.Animation.FPS)
	v.SetDefault("animation.frequency", def.Animation.Frequency)
	v.SetDefault("animation.damping", def.Animation.Damping)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
