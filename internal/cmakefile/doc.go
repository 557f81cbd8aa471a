// Package cmakefile maintains the generated CMakeLists.txt through anchor
// comments. It never parses CMake semantics: the file is an ordered line
// sequence with two sentinel positions (source and header anchors), and new
// file references are spliced in immediately before them. Hand edits
// anywhere else in the file survive every update.
package cmakefile
