// Package layout enforces the fixed project directory convention: src/,
// include/, external/, build/ plus the required top-level files. It creates
// the skeleton on init, validates existing roots, and locates the enclosing
// project root for commands run from subdirectories.
package layout
