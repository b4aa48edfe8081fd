// Package config manages user-level settings stored at ~/.toolforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the coach command override used when launching the assistant CLI.
package config
