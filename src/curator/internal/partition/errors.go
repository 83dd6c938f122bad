package partition

import "github.com/cockroachdb/errors/domains"

var (
	UnknownPolicy     = domains.New("unknown_partition_policy")
	InvalidCount      = domains.New("invalid_partition_count")
	InsufficientFiles = domains.New("insufficient_files")
)
