package dev

import "github.com/veedubyou/stem-curator/src/shared/config"

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
	DynamoTracksTable     = "Tracks"
)

var DynamoCatalog = config.LocalDynamoCatalog{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
	Table:           DynamoTracksTable,
}

// Cloud storage emulator
const (
	CloudStorageHost       = "http://localhost:4443"
	CloudStorageBucketName = "stem-curator-dev"
)

var CloudStorage = config.LocalCloudStorage{
	StorageHost:  CloudStorageHost,
	HostEndpoint: CloudStorageHost + "/storage/v1",
	BucketName:   CloudStorageBucketName,
}

// MedleyDB
const (
	MedleyDBPath = "./MedleyDB"
)
