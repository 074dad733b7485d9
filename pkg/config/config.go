package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes configuration environment variables. Sections and
// keys are separated by a double underscore.
const EnvPrefix = "ICONTHEME_"

// Keys that callers commonly override
const (
	KeyScanExtension    = "scan.extension"
	KeyScanPreviewLimit = "scan.preview_limit"
	KeyIconsDir         = "export.icons_dir"
	KeyMappingsFile     = "export.mappings_file"
	KeyOutputFormat     = "output.format"
	KeyOutputNoColor    = "output.no_color"
)

// Config is the resolved configuration
type Config struct {
	Scan   ScanConfig   `koanf:"scan"`
	Export ExportConfig `koanf:"export"`
	Output OutputConfig `koanf:"output"`
}

// ScanConfig controls scanning
type ScanConfig struct {
	Extension    string `koanf:"extension"`
	PreviewLimit int    `koanf:"preview_limit"`
}

// ExportConfig controls theme export
type ExportConfig struct {
	IconsDir     string `koanf:"icons_dir"`
	MappingsFile string `koanf:"mappings_file"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `koanf:"format"`
	NoColor bool   `koanf:"no_color"`
}

// LoadOptions selects the config file and caller overrides
type LoadOptions struct {
	// ConfigFile is loaded instead of the XDG config file. It must exist.
	ConfigFile string
	// Overrides maps dotted keys to values and wins over every other layer
	Overrides map[string]interface{}
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load resolves the configuration from every layer.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, found := opts.ConfigFile, opts.ConfigFile != ""
	if found {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail(errors.DetailPath, path)
		}
	} else {
		path, found = paths.ConfigFilePath()
	}
	if found {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail(errors.DetailPath, path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Resolved configuration")
	return cfg, nil
}

// envKey maps ICONTHEME_SCAN__PREVIEW_LIMIT to scan.preview_limit. The
// override variable for the icons dir is read by paths, not here.
func envKey(s string) string {
	if s == paths.EnvIconsDir {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
