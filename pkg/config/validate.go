package config

import (
	"strings"

	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/paths"
)

// Formats accepted for output.format
var validFormats = map[string]bool{
	"auto": true,
	"term": true,
	"text": true,
	"json": true,
}

// postProcess normalizes values and rejects ones commands cannot use.
func postProcess(cfg *Config) error {
	cfg.Scan.Extension = strings.TrimPrefix(strings.TrimSpace(cfg.Scan.Extension), ".")
	if cfg.Scan.Extension == "" {
		return errors.New(errors.ErrConfigValid, "scan.extension must not be empty").
			WithDetail("key", KeyScanExtension)
	}
	if strings.ContainsAny(cfg.Scan.Extension, `/\.`) {
		return errors.Newf(errors.ErrConfigValid, "scan.extension %q must be a single suffix", cfg.Scan.Extension).
			WithDetail("key", KeyScanExtension)
	}

	if cfg.Scan.PreviewLimit <= 0 {
		return errors.Newf(errors.ErrConfigValid, "scan.preview_limit must be positive, got %d", cfg.Scan.PreviewLimit).
			WithDetail("key", KeyScanPreviewLimit)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = "auto"
	}
	if !validFormats[cfg.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "output.format %q is not one of auto, term, text, json", cfg.Output.Format).
			WithDetail("key", KeyOutputFormat)
	}

	cfg.Export.IconsDir = paths.ExpandHome(strings.TrimSpace(cfg.Export.IconsDir))
	cfg.Export.MappingsFile = paths.ExpandHome(strings.TrimSpace(cfg.Export.MappingsFile))
	return nil
}
