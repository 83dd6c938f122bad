package sox

import "github.com/cockroachdb/errors/domains"

var (
	ToolFailed = domains.New("sox_failed")
)
