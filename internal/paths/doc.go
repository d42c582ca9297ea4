// Provides the well-known file names and directories used by cargo-psp.
//
// Project files (the transient toolchain manifest and the packaging config)
// live in the working directory cargo runs the subcommand from. User-level
// defaults follow XDG conventions on Linux and platform-native conventions on
// macOS and Windows, under a "cargo-psp" subdirectory.
package paths
