// Package partition moves a fixed number of files per category from one
// directory tree to a parallel one, typically carving a test set out of a
// training set.
package partition

import (
	"context"
	"math/rand"
	"path/filepath"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/categorydir"
	"github.com/veedubyou/stem-curator/src/curator/internal/progress"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/lib/fsx"
)

type Request struct {
	SourceTree      string
	DestinationTree string
	Policy          Policy
	Count           int
	Extensions      []string
}

// NewPartitioner takes the random source used by the Random policy. It is
// not safe to share rng with other goroutines while partitioning.
func NewPartitioner(rng *rand.Rand, observer progress.Observer) Partitioner {
	if observer == nil {
		observer = progress.Nop{}
	}

	return Partitioner{
		rng:      rng,
		observer: observer,
	}
}

type Partitioner struct {
	rng      *rand.Rand
	observer progress.Observer
}

// Partition moves files category by category. A bad request is returned as
// an error before anything moves; failures inside a category are recorded in
// the summary and the remaining categories still run. A category with no
// audio files is skipped.
func (p Partitioner) Partition(ctx context.Context, request Request) (*report.Summary, error) {
	if _, err := ParsePolicy(string(request.Policy)); err != nil {
		return nil, err
	}

	if request.Count < 1 {
		return nil, mark.Messagef(InvalidCount, "Count must be at least 1, got %d", request.Count)
	}

	categories, err := categorydir.Categories(request.SourceTree)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to list source categories")
	}

	log.WithFields(log.Fields{
		"source":      request.SourceTree,
		"destination": request.DestinationTree,
		"policy":      request.Policy,
		"count":       request.Count,
		"categories":  len(categories),
	}).Info("Partitioning categories")

	summary := report.NewSummary("split-test-set")

	p.observer.Start(len(categories))
	defer p.observer.Finish()

	for _, category := range categories {
		if ctx.Err() != nil {
			summary.Fail(category, cerr.Wrap(ctx.Err()).Error("Context cancelled before partitioning category"))
			p.observer.Step(category)
			continue
		}

		moved, err := p.partitionCategory(request, category)
		switch {
		case err != nil:
			summary.Add(report.Unit{Name: category, Status: report.StatusFailed, Files: moved, Err: err})
		case moved == 0:
			summary.Skip(category)
		default:
			summary.OK(category, moved)
		}

		p.observer.Step(category)
	}

	return summary, nil
}

func (p Partitioner) partitionCategory(request Request, category string) (int, error) {
	sourceDir := filepath.Join(request.SourceTree, category)
	destDir := filepath.Join(request.DestinationTree, category)

	errctx := cerr.Field("category", category)
	logger := log.WithFields(log.Fields{
		"category": category,
		"policy":   request.Policy,
	})

	files, err := categorydir.AudioFiles(sourceDir, request.Extensions...)
	if err != nil {
		return 0, errctx.Wrap(err).Error("Failed to list category files")
	}

	selected, err := Select(files, request.Policy, request.Count, p.rng)
	if err != nil {
		return 0, errctx.Field("available", len(files)).Wrap(err).Error("Failed to select files")
	}

	if len(selected) < request.Count {
		logger.WithFields(log.Fields{
			"requested": request.Count,
			"available": len(files),
		}).Warn("Category has fewer files than requested, moving all of them")
	}

	if len(selected) == 0 {
		return 0, nil
	}

	if err := fsx.EnsureDir(destDir); err != nil {
		return 0, errctx.Wrap(err).Error("Failed to create destination category")
	}

	moved := 0
	var firstErr error
	for _, name := range selected {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(destDir, name)

		if err := fsx.Move(src, dst); err != nil {
			logger.WithError(err).WithField("file", name).Error("Failed to move file")
			if firstErr == nil {
				firstErr = errctx.Wrap(err).Error("Failed to move file to destination")
			}
			continue
		}

		moved++
		logger.WithField("file", name).Debug("Moved file")
	}

	return moved, firstErr
}
