// Package artifact locates the compiled images a build produced.
//
// Build metadata (cargo metadata) lists the workspace members and their
// targets. Every binary target of every workspace member becomes an
// [Artifact]: the compiled image plus the paths the packaging tools write
// next to it. Paths are derived, never checked; a missing image surfaces
// when the first packaging tool runs.
package artifact
