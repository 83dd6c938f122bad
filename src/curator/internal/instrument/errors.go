package instrument

import "github.com/cockroachdb/errors/domains"

var (
	InvalidThreshold = domains.New("invalid_min_sources")
)
