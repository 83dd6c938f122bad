package dummy

import "github.com/cockroachdb/errors"

var (
	ToolCrashed    = errors.New("Dummy tool crashed")
	NetworkFailure = errors.New("Dummy network failure")
)
