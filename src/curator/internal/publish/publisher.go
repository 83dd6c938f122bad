// Package publish uploads a curated dataset tree to cloud storage, one object
// per file, keeping the category layout.
package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/categorydir"
	"github.com/veedubyou/stem-curator/src/curator/internal/filestore"
	"github.com/veedubyou/stem-curator/src/curator/internal/progress"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/curator/internal/storagepath"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
)

func NewPublisher(store filestore.FileStore, paths storagepath.Generator, observer progress.Observer) Publisher {
	if observer == nil {
		observer = progress.Nop{}
	}

	return Publisher{
		store:    store,
		paths:    paths,
		observer: observer,
	}
}

type Publisher struct {
	store    filestore.FileStore
	paths    storagepath.Generator
	observer progress.Observer
}

type upload struct {
	category string
	name     string
}

func (u upload) unitName() string {
	return u.category + "/" + u.name
}

// Publish uploads every audio file of every category under sourceTree. Each
// file is its own unit: one failed upload does not stop the rest.
func (p Publisher) Publish(ctx context.Context, sourceTree string, exts ...string) (*report.Summary, error) {
	categories, err := categorydir.Categories(sourceTree)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to list categories to publish")
	}

	uploads := []upload{}
	for _, category := range categories {
		files, err := categorydir.AudioFiles(filepath.Join(sourceTree, category), exts...)
		if err != nil {
			return nil, cerr.Field("category", category).Wrap(err).Error("Failed to list files to publish")
		}

		for _, name := range files {
			uploads = append(uploads, upload{category: category, name: name})
		}
	}

	log.WithFields(log.Fields{
		"source": sourceTree,
		"bucket": p.paths.Bucket,
		"prefix": p.paths.Prefix,
		"files":  len(uploads),
	}).Info("Publishing dataset")

	summary := report.NewSummary("publish-dataset")

	p.observer.Start(len(uploads))
	defer p.observer.Finish()

	for _, u := range uploads {
		if err := p.publishOne(ctx, sourceTree, u); err != nil {
			summary.Fail(u.unitName(), err)
		} else {
			summary.OK(u.unitName(), 1)
		}

		p.observer.Step(u.unitName())
	}

	return summary, nil
}

func (p Publisher) publishOne(ctx context.Context, sourceTree string, u upload) error {
	localPath := filepath.Join(sourceTree, u.category, u.name)
	fileURL := p.paths.GeneratePath(u.category, u.name)
	errctx := cerr.Field("local_path", localPath).Field("file_url", fileURL)

	if ctx.Err() != nil {
		return errctx.Wrap(ctx.Err()).Error("Context cancelled before upload")
	}

	contents, err := os.ReadFile(localPath)
	if err != nil {
		return errctx.Wrap(err).Error("Failed to read file to publish")
	}

	if err := p.store.WriteFile(ctx, fileURL, contents); err != nil {
		return errctx.Wrap(err).Error("Failed to upload file")
	}

	log.WithFields(log.Fields{
		"fileURL": fileURL,
		"bytes":   len(contents),
	}).Debug("Uploaded file")

	return nil
}
