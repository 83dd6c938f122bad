package normalize

import "github.com/cockroachdb/errors/domains"

var (
	EmptyDirectory  = domains.New("empty_directory")
	InvalidDuration = domains.New("invalid_duration")
	NameTaken       = domains.New("name_taken")
)
