// Package config provides user configuration for the decoder CLI.
//
// Settings live in a YAML file in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/sinclair-decoder/config.yaml or $HOME/.config/sinclair-decoder/config.yaml
//   - macOS: $HOME/.config/sinclair-decoder/config.yaml
//   - Windows: %LOCALAPPDATA%\sinclair-decoder\config.yaml
//
// Load layers three sources: built-in defaults, the file, and SINCLAIR_*
// environment variables (dots in keys become underscores, so
// output.format is SINCLAIR_OUTPUT_FORMAT). Command-line flags are applied
// on top by the caller.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	cfg.Output.Format = "json"
//	if err := cfg.Save(""); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Save serializes writers with a mutex and replaces the file atomically.
package config
