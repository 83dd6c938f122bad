package application

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/google/uuid"
)

var _ log.Handler = runHandler{}

// runHandler stamps every entry with the ID of the current run.
type runHandler struct {
	next  log.Handler
	runID string
}

func (r runHandler) HandleLog(entry *log.Entry) error {
	fields := log.Fields{}
	for k, v := range entry.Fields {
		fields[k] = v
	}
	fields["run_id"] = r.runID

	stamped := *entry
	stamped.Fields = fields
	return r.next.HandleLog(&stamped)
}

// SetupLogging points apex/log at output for one command run and returns the
// run's ID.
func SetupLogging(output io.Writer, verbose bool) string {
	runID := uuid.New().String()

	log.SetHandler(runHandler{
		next:  cli.New(output),
		runID: runID,
	})

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	return runID
}
