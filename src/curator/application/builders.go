package application

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/stem-curator/src/curator/internal/filestore"
	"github.com/veedubyou/stem-curator/src/curator/internal/progress"
	"github.com/veedubyou/stem-curator/src/curator/internal/sox"
	"github.com/veedubyou/stem-curator/src/shared/config"
	"github.com/veedubyou/stem-curator/src/shared/lib/dynamo"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/lib/executor"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
	"github.com/veedubyou/stem-curator/src/shared/track/storage"
	"google.golang.org/api/option"
)

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}

	return t
}

func (a App) observer(label string) progress.Observer {
	if a.config.Progress {
		return progress.NewBar(label)
	}

	return progress.Nop{}
}

func newSoxTool(binPath string, executor executor.Executor) (sox.Tool, error) {
	if binPath == "" {
		foundPath, err := config.SoxPath()
		if err != nil {
			return sox.Tool{}, mark.Wrap(err, ConfigInvalid, "Set SOX_BIN_PATH or put sox on PATH")
		}
		binPath = foundPath
	}

	return sox.NewTool(binPath, executor), nil
}

func newTrackSource(metadataSource config.MetadataSource) (trackentity.Source, error) {
	if t, ok := metadataSource.(config.MedleyDBMetadata); ok {
		return trackstorage.NewMedleyDB(t.Root), nil
	}

	catalog, ok := newCatalog(metadataSource)
	if !ok {
		return nil, mark.Message(ConfigInvalid, "No metadata source is configured")
	}

	return catalog, nil
}

func newCatalog(metadataSource config.MetadataSource) (trackstorage.DB, bool) {
	var dbConfig *aws.Config
	var table string

	switch t := metadataSource.(type) {
	case config.ProdDynamoCatalog:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region)
		table = t.Table

	case config.LocalDynamoCatalog:
		dbConfig = aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(
				t.AccessKeyID,
				t.SecretAccessKey,
				"",
			)).
			WithRegion(t.Region).
			WithEndpoint(t.Host)
		table = t.Table

	default:
		return trackstorage.DB{}, false
	}

	dbSession := session.Must(session.NewSession())
	db := dynamolib.NewDynamoDBWrapper(dynamo.New(dbSession, dbConfig))
	return trackstorage.NewDB(db, table), true
}

func newGoogleFileStore(cloudStorageConfig config.CloudStorage) filestore.GoogleFileStore {
	switch t := cloudStorageConfig.(type) {
	case config.ProdCloudStorage:
		return must(filestore.NewGoogleFileStore(
			t.StorageHost,
			option.WithCredentialsJSON([]byte(t.SecretKey)),
		))

	case config.LocalCloudStorage:
		return must(filestore.NewGoogleFileStore(
			t.StorageHost,
			option.WithEndpoint(t.HostEndpoint),
			option.WithoutAuthentication(),
		))

	default:
		panic("Unrecognized cloud storage config")
	}
}
