package trackstorage

import "github.com/cockroachdb/errors/domains"

var (
	MetadataUnreadable = domains.New("metadata_unreadable")
	UnmarshalMark      = domains.New("track_unmarshal_fail")
	DefaultErrorMark   = domains.New("default_error")
)
