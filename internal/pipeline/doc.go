// Package pipeline drives a complete cargo-psp run.
//
// A run writes the sysroot manifest, builds the workspace for the PSP target
// through the configured builder, locates the compiled binaries and packages
// each one into an EBOOT.PBP bundle. Every failure is terminal; nothing is
// retried.
//
// The run moves through a fixed set of states:
//
//	Idle -> ManifestWritten -> Building -> BuildFailed
//	                                    -> BuildSucceeded -> Packaging -> Done
//	                                                                   -> PackagingFailed
//
// Failures before the builder starts, such as a leftover manifest, end in
// BuildFailed without passing through the intermediate states.
package pipeline
