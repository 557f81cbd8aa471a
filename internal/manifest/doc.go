// Package manifest models the project.toml file: project metadata, the
// declared dependency table, and build settings. It owns parsing, writing,
// default filling, and JSON Schema validation of the manifest.
package manifest
