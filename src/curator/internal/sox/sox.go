// Package sox drives the sox command line tool for the two edits the
// curation pipeline needs: silence removal with a mono downmix, and trimming
// to a fixed length.
package sox

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/lib/executor"
)

// silence effect: strip leading audio under 0.1% amplitude lasting 0.1s,
// then the same at the end (the -1 reverses the second pass)
var silenceArgs = []string{"silence", "1", "0.1", "0.1%", "-1", "0.1", "0.1%"}

func NewTool(binPath string, executor executor.Executor) Tool {
	return Tool{
		binPath:  binPath,
		executor: executor,
	}
}

type Tool struct {
	binPath  string
	executor executor.Executor
}

// RemoveSilence writes a mono copy of src to dst with leading and trailing
// silence removed. src is left untouched.
func (t Tool) RemoveSilence(ctx context.Context, src string, dst string) error {
	args := []string{src, "-c", "1", dst}
	args = append(args, silenceArgs...)

	return t.run(ctx, "remove_silence", dst, args)
}

// Trim writes the first length seconds of src to dst. length is passed to sox
// verbatim.
func (t Tool) Trim(ctx context.Context, src string, dst string, length string) error {
	args := []string{src, dst, "trim", "0", length}

	return t.run(ctx, "trim", dst, args)
}

func (t Tool) run(ctx context.Context, operation string, dst string, args []string) error {
	errctx := cerr.Field("sox_bin_path", t.binPath).Field("sox_args", args)

	if ctx.Err() != nil {
		return errctx.Wrap(ctx.Err()).Error("Context cancelled before sox could run")
	}

	logger := log.WithFields(log.Fields{
		"operation": operation,
		"destPath":  dst,
	})

	logger.Debug("Running sox command")

	cmd := t.executor.Command(t.binPath, args...)
	cmd.SetDir(filepath.Dir(dst))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return mark.Wrap(
			errctx.Field("sox_output", string(output)).
				Wrap(err).
				Error(fmt.Sprintf("Error occurred while running sox: %s", string(output))),
			ToolFailed,
			"sox failed")
	}

	if len(output) > 0 {
		logger.Debug(string(output))
	}
	logger.Debug("Finished sox command")

	return nil
}
