package application

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
)

// CommonFlags are accepted by every command.
type CommonFlags struct {
	Verbose  bool
	Progress bool
}

func RegisterCommonFlags(flags *flag.FlagSet) *CommonFlags {
	common := &CommonFlags{}
	flags.BoolVar(&common.Verbose, "verbose", false, "log debug output, including external tool output")
	flags.BoolVar(&common.Progress, "progress", StderrIsTerminal(), "show a progress bar")
	return common
}

type Command func(ctx context.Context, config Config) (*report.Summary, error)

// Run parses args, prepares the environment and logging, runs command until
// it returns or the process is interrupted, and returns the exit status.
func Run(flags *flag.FlagSet, args []string, common *CommonFlags, command Command) int {
	if err := flags.Parse(args); err != nil {
		return ExitUsage
	}

	SetupLogging(os.Stderr, common.Verbose)
	logger := log.WithField("command", flags.Name())

	if err := LoadDotEnv(); err != nil {
		cerr.Log(cerr.Wrap(err).Error("Failed to load .env"))
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("Starting")

	summary, err := command(ctx, Config{
		SoxBinPath: SoxBinPathFromEnv(),
		Progress:   common.Progress,
	})

	if summary != nil {
		summary.Log()
	}
	if err != nil {
		cerr.Log(err)
	}

	code := ExitCode(summary, err)
	logger.WithField("exit_code", code).Debug("Finished")
	return code
}
