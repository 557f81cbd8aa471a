// Package scaffold renders the initial project files from embedded templates:
// entry point, CMakeLists.txt pre-seeded with anchor comments, project.toml,
// ignore rules, and the documentation stub. It powers the "cforge init"
// command's populate step.
package scaffold
