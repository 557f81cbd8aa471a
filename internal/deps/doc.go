// Package deps reconciles the manifest's declared dependency list against
// the external/ directory via git clone and checkout. Reconciliation is
// best-effort and per-entry: each dependency's outcome depends only on its
// own spec and directory state, and one failure never blocks the rest.
package deps
