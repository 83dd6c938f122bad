package filestore

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/veedubyou/stem-curator/src/curator/internal/storagepath"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"google.golang.org/api/option"
)

type FileStore interface {
	WriteFile(ctx context.Context, fileURL string, data []byte) error
}

var _ FileStore = GoogleFileStore{}

func NewGoogleFileStore(storageHost string, options ...option.ClientOption) (GoogleFileStore, error) {
	client, err := storage.NewClient(context.Background(), options...)
	if err != nil {
		return GoogleFileStore{}, cerr.Wrap(err).Error("Failed to create cloud storage client")
	}

	return NewGoogleFileStoreFromClient(storageHost, client), nil
}

func NewGoogleFileStoreFromClient(storageHost string, client *storage.Client) GoogleFileStore {
	return GoogleFileStore{
		storageHost: storageHost,
		client:      client,
	}
}

// GoogleFileStore addresses objects by URL: <storageHost>/<bucket>/<object>.
type GoogleFileStore struct {
	storageHost string
	client      *storage.Client
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, data []byte) error {
	errctx := cerr.Field("file_url", fileURL)

	object, err := g.object(fileURL)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to resolve file URL")
	}

	writer := object.NewWriter(ctx)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return errctx.Wrap(err).Error("Failed to write object")
	}

	if err := writer.Close(); err != nil {
		return errctx.Wrap(err).Error("Failed to finish writing object")
	}

	return nil
}

func (g GoogleFileStore) object(fileURL string) (*storage.ObjectHandle, error) {
	bucket, name, err := storagepath.SplitURL(g.storageHost, fileURL)
	if err != nil {
		return nil, err
	}

	return g.client.Bucket(bucket).Object(name), nil
}
