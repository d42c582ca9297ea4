package build

import (
	"strings"

	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Name of the hidden subcommand that runs cargo-psp in its builder role.
const BuilderCommandName = "__builder"

// Returns the command that re-invokes cargo-psp (at exe) as the builder.
//
// The build arguments are appended by the [Invoker] after the "--"
// separator, so the builder role receives them untouched.
func SelfCommand(exe string, o Options) runtime.Command {
	args := []string{BuilderCommandName, "--method", o.Method.String()}
	if o.IncludeStd {
		args = append(args, "--std")
	}
	args = append(args, "--")
	return runtime.Command{Name: exe, Args: args}
}

// Returns the command the builder role runs for the given method.
//
// The toolchain wrapper is xargo, which reads Xargo.toml. Build-std runs
// cargo directly with the sysroot crates named on the command line.
func BuilderCommand(method Method, includeStd bool, args []string) runtime.Command {
	if method == BuildStd {
		crates := []string{"core", "alloc", "panic_unwind"}
		if includeStd {
			crates = append(crates, "std")
		}
		return runtime.Command{
			Name: Cargo(),
			Args: append(append([]string(nil), args...), "-Zbuild-std="+strings.Join(crates, ",")),
		}
	}
	return runtime.Command{Name: "xargo", Args: append([]string(nil), args...)}
}
