// Package module generates implementation/header file pairs from a module
// name and registers them in the build descriptor. A module is created as
// one atomic unit: both files plus the descriptor update succeed together,
// or compensating cleanup removes everything written during the call.
package module
