package application

import (
	"github.com/cockroachdb/errors/domains"
	"github.com/cockroachdb/errors/markers"
	"github.com/veedubyou/stem-curator/src/curator/internal/instrument"
	"github.com/veedubyou/stem-curator/src/curator/internal/normalize"
	"github.com/veedubyou/stem-curator/src/curator/internal/partition"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
)

var (
	ConfigInvalid = domains.New("config_invalid")
)

const (
	ExitOK          = 0
	ExitUnitsFailed = 1
	ExitUsage       = 2
)

var configMarks = []error{
	ConfigInvalid,
	instrument.InvalidThreshold,
	partition.UnknownPolicy,
	partition.InvalidCount,
	normalize.InvalidDuration,
}

func IsConfigError(err error) bool {
	for _, configMark := range configMarks {
		if markers.Is(err, configMark) {
			return true
		}
	}

	return false
}

// ExitCode maps the outcome of a command to its process exit status.
func ExitCode(summary *report.Summary, err error) int {
	switch {
	case err != nil && IsConfigError(err):
		return ExitUsage
	case err != nil:
		return ExitUnitsFailed
	case summary != nil && summary.Err() != nil:
		return ExitUnitsFailed
	default:
		return ExitOK
	}
}
