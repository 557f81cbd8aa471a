// Package config manages user-level settings stored at ~/.cforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the git executable override used by dependency sync.
package config
