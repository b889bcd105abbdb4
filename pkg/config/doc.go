// Package config loads karabuild settings.
//
// Sources are layered with koanf, later ones overriding earlier ones:
// embedded defaults, the user config file, a project .karabuild.toml in the
// working directory, KARABUILD_* environment variables and finally
// command-line overrides.
package config
