package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/pspkit/cargo-psp/internal"
)

// Represents the root command for cargo-psp.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Psp     PspCmd     `cmd:"" help:"Compile Rust code into an EBOOT.PBP file ready to run on a PSP."`
	Builder BuilderCmd `cmd:"" name:"__builder" hidden:"" help:"Run the sysroot builder."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd, options(ctx)...)

	configureLogger()

	return kongCtx.Run()
}

func options(ctx context.Context) []kong.Option {
	return []kong.Option{
		kong.Name(internal.Name),
		kong.Description("Builds PSP homebrew.\n\n" +
			"Expects to be run as `cargo psp`, with the cargo-psp executable somewhere in your $PATH."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	}
}
