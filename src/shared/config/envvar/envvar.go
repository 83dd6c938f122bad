package envvar

import (
	"fmt"
	"os"
)

const (
	ENVIRONMENT                      = "ENVIRONMENT"
	SOX_BIN_PATH                     = "SOX_BIN_PATH"
	CURATOR_METADATA_SOURCE          = "CURATOR_METADATA_SOURCE"
	MEDLEYDB_PATH                    = "MEDLEYDB_PATH"
	AWS_ACCESS_KEY_ID                = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY            = "AWS_SECRET_ACCESS_KEY"
	AWS_REGION                       = "AWS_REGION"
	DYNAMO_TRACKS_TABLE              = "DYNAMO_TRACKS_TABLE"
	DYNAMO_TEST_HOST                 = "DYNAMO_TEST_HOST"
	GOOGLE_CLOUD_KEY                 = "GOOGLE_CLOUD_KEY"
	GOOGLE_CLOUD_STORAGE_HOST        = "GOOGLE_CLOUD_STORAGE_HOST"
	GOOGLE_CLOUD_STORAGE_BUCKET_NAME = "GOOGLE_CLOUD_STORAGE_BUCKET_NAME"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// GetOrDefault returns the value of key, or fallback when it is unset or empty.
func GetOrDefault(key string, fallback string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return fallback
	}

	return val
}
