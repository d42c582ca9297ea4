// Parses flags and configures logging for cargo-psp.
//
// cargo runs the executable as `cargo-psp psp [flags] [cargo args...]`. The
// psp command accepts the following flags:
//
//	-n, --no-std         Do not build the standard library.
//	    --release        Build in release mode.
//	-b, --build-method   Sysroot strategy, xargo or build-std.
//	    --libc-crate     Crate root of a local libc checkout.
//	    --rust-src       src/ directory of a local Rust checkout.
//
// Arguments after the flags are passed along to the builder. Global flags
// -q, -v and -d override build-time logging defaults set via linker flags.
// After parsing, the global logger is reconfigured to reflect the final level
// and verbosity before the command runs.
//
// The hidden __builder command is the builder role. The psp command
// re-invokes its own executable with it, so users never run it directly.
package cli
