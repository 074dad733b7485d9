// Package config loads icontheme settings.
//
// Layers are applied in order, later ones winning:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, either given explicitly or found at
//     $XDG_CONFIG_HOME/icontheme/config.toml (TOML or YAML by extension)
//  3. ICONTHEME_<SECTION>__<KEY> environment variables, e.g.
//     ICONTHEME_SCAN__PREVIEW_LIMIT=10
//  4. overrides set by the caller, typically from command line flags
package config
