package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	rfseeerrors "github.com/mboehme/rfsee/pkg/errors"
)

// defaultConfigFile is loaded from the working directory when present and
// no --config flag is given.
const defaultConfigFile = "rfsee.toml"

// Config holds file-based defaults for the build command. Flags override
// any value set here.
//
// Example rfsee.toml:
//
//	index = "zips/xml/rfc-index.xml"
//	texts = "zips"
//	out   = "site"
//
//	[render]
//	formats     = ["dot", "svg", "html"]
//	title_width = 40
type Config struct {
	Index string `toml:"index"` // path to rfc-index.xml
	Texts string `toml:"texts"` // directory of rfcNNNN.txt documents
	Out   string `toml:"out"`   // output directory

	Render RenderConfig `toml:"render"`

	Cache CacheConfig `toml:"cache"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Formats    []string `toml:"formats"`
	TitleWidth int      `toml:"title_width"`
}

// CacheConfig holds artifact-cache defaults.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// loadConfig reads a TOML config file. With an explicit path, a missing or
// malformed file is an error; with the default path, a missing file just
// yields the zero config.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, rfseeerrors.Wrap(rfseeerrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// orString returns flag if set, otherwise fallback.
func orString(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

// orInt returns flag if positive, otherwise fallback.
func orInt(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}

// requirePath validates that a required path option was provided somewhere.
func requirePath(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required (flag or %s)", name, defaultConfigFile)
	}
	return nil
}
