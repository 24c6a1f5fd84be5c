package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/xcbuild/internal"
	"github.com/cruciblehq/xcbuild/internal/runtime"
)

// Represents the root command for xcbuild.
var RootCmd struct {
	Quiet       bool           `short:"q" help:"Suppress informational output."`
	Verbose     bool           `short:"v" help:"Include source locations in log output."`
	Debug       bool           `short:"d" help:"Enable debug output."`
	Config      string         `short:"c" help:"Override the default input file path." placeholder:"PATH" type:"path"`
	Build       BuildCmd       `cmd:"" help:"Run xcodebuild and capture the result bundle."`
	Args        ArgsCmd        `cmd:"" help:"Print the xcodebuild arguments without running anything."`
	Destination DestinationCmd `cmd:"" help:"Parse and re-encode a destination descriptor."`
	Version     VersionCmd     `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Runs xcodebuild from declarative inputs.\n\nComposes the argument list, runs the build, and archives and uploads the result bundle."),
		kong.UsageOnError(),
		kong.Vars{
			"version":              internal.VersionString(),
			"containerd_address":   runtime.DefaultAddress,
			"containerd_namespace": runtime.DefaultNamespace,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Replaces the global logger based on CLI flags.
func configureLogger() {
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	slog.SetDefault(NewLogger(os.Stderr))
}

// Creates a logger writing to w at the level implied by the current modes.
//
// Records are grouped under the program name. Verbose mode adds source
// locations.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     internal.LogLevel(),
		AddSource: internal.IsVerbose(),
	})
	return slog.New(handler.WithGroup(internal.Name))
}
