package dummy

import (
	"context"
	"sync"

	"github.com/veedubyou/stem-curator/src/curator/internal/filestore"
)

var _ filestore.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		Files:       map[string][]byte{},
	}
}

type FileStore struct {
	Unavailable bool
	Files       map[string][]byte
	mutex       sync.Mutex
}

func (f *FileStore) WriteFile(ctx context.Context, fileURL string, data []byte) error {
	if f.Unavailable {
		return NetworkFailure
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.Files[fileURL] = append([]byte{}, data...)
	return nil
}
