package application

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/veedubyou/stem-curator/src/shared/config"
	"github.com/veedubyou/stem-curator/src/shared/config/dev"
	"github.com/veedubyou/stem-curator/src/shared/config/envvar"
	"github.com/veedubyou/stem-curator/src/shared/config/prod"
	"github.com/veedubyou/stem-curator/src/shared/lib/env"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
)

const (
	MetadataFromMedleyDB = "medleydb"
	MetadataFromDynamo   = "dynamo"
)

// LoadDotEnv reads .env from the working directory when there is one.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load()
}

// StderrIsTerminal decides the default for progress bars.
func StderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func SoxBinPathFromEnv() string {
	return envvar.GetOrDefault(envvar.SOX_BIN_PATH, "")
}

// MetadataSourceFromEnv picks the track metadata source named by
// CURATOR_METADATA_SOURCE.
func MetadataSourceFromEnv() (config.MetadataSource, error) {
	source := strings.ToLower(envvar.GetOrDefault(envvar.CURATOR_METADATA_SOURCE, MetadataFromMedleyDB))

	switch source {
	case MetadataFromMedleyDB:
		return config.MedleyDBMetadata{
			Root: envvar.GetOrDefault(envvar.MEDLEYDB_PATH, dev.MedleyDBPath),
		}, nil

	case MetadataFromDynamo:
		table := envvar.GetOrDefault(envvar.DYNAMO_TRACKS_TABLE, dev.DynamoTracksTable)

		switch env.Get() {
		case env.Production:
			return config.ProdDynamoCatalog{
				AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
				SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
				Region:          envvar.GetOrDefault(envvar.AWS_REGION, prod.DynamoDBRegion),
				Table:           table,
			}, nil

		default:
			catalog := dev.DynamoCatalog
			catalog.Table = table
			return catalog, nil
		}

	default:
		return nil, mark.Messagef(ConfigInvalid, "Unknown metadata source %q, expected %s or %s",
			source, MetadataFromMedleyDB, MetadataFromDynamo)
	}
}

// CloudStorageFromEnv builds the storage config for the current
// environment. A non-empty bucket overrides the configured one.
func CloudStorageFromEnv(bucket string) config.CloudStorage {
	switch env.Get() {
	case env.Production:
		if bucket == "" {
			bucket = envvar.MustGet(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME)
		}

		return config.ProdCloudStorage{
			StorageHost: prod.GOOGLE_STORAGE_HOST,
			SecretKey:   envvar.MustGet(envvar.GOOGLE_CLOUD_KEY),
			BucketName:  bucket,
		}

	default:
		storage := dev.CloudStorage
		if bucket != "" {
			storage.BucketName = bucket
		} else {
			storage.BucketName = envvar.GetOrDefault(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME, storage.BucketName)
		}

		if host := envvar.GetOrDefault(envvar.GOOGLE_CLOUD_STORAGE_HOST, ""); host != "" {
			storage.StorageHost = host
			storage.HostEndpoint = strings.TrimSuffix(host, "/") + "/storage/v1"
		}

		return storage
	}
}
