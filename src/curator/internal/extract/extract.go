// Package extract copies or cleans the stems of selected instruments into a
// tree with one directory per instrument.
package extract

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/instrument"
	"github.com/veedubyou/stem-curator/src/curator/internal/progress"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/fsx"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
	"golang.org/x/sync/errgroup"
)

type SilenceRemover interface {
	RemoveSilence(ctx context.Context, src string, dst string) error
}

// Job is one stem headed for DestPath.
type Job struct {
	TrackID    string
	Instrument string
	SourcePath string
	DestPath   string
}

// Name identifies the job in reports: instrument and file name.
func (j Job) Name() string {
	return filepath.Join(j.Instrument, filepath.Base(j.DestPath))
}

// Plan lists a job for every stem of every bleed-free track whose instrument
// is in valid, in track then stem order. When two stems would land on the
// same destination only the first is kept.
func Plan(tracks []trackentity.Track, valid instrument.Set, destinationRoot string) []Job {
	jobs := []Job{}
	planned := map[string]string{}

	for _, track := range trackentity.CleanTracks(tracks) {
		for _, stem := range track.Stems {
			if !valid.Contains(stem.Instrument) {
				continue
			}

			dest := filepath.Join(destinationRoot, stem.Instrument, filepath.Base(stem.FilePath))
			if other, ok := planned[dest]; ok {
				log.WithFields(log.Fields{
					"destPath":   dest,
					"sourcePath": stem.FilePath,
					"keptSource": other,
				}).Warn("Two stems share a destination, skipping the later one")
				continue
			}
			planned[dest] = stem.FilePath

			jobs = append(jobs, Job{
				TrackID:    track.ID,
				Instrument: stem.Instrument,
				SourcePath: stem.FilePath,
				DestPath:   dest,
			})
		}
	}

	return jobs
}

type Options struct {
	DestinationRoot string
	KeepSilence     bool
	// Workers bounds concurrent jobs, defaulting to the CPU count.
	Workers int
}

func NewExtractor(remover SilenceRemover, observer progress.Observer) Extractor {
	if observer == nil {
		observer = progress.Nop{}
	}

	return Extractor{
		remover:  remover,
		observer: observer,
	}
}

type Extractor struct {
	remover  SilenceRemover
	observer progress.Observer
}

// Extract writes every planned stem and returns once all of them have
// finished. A failing stem is reported and does not stop the others.
func (e Extractor) Extract(ctx context.Context, tracks []trackentity.Track, valid instrument.Set, options Options) *report.Summary {
	summary := report.NewSummary("extract-stems")
	jobs := Plan(tracks, valid, options.DestinationRoot)

	workers := options.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	log.WithFields(log.Fields{
		"destination": options.DestinationRoot,
		"instruments": valid.Sorted(),
		"stems":       len(jobs),
		"keepSilence": options.KeepSilence,
		"workers":     workers,
	}).Info("Extracting stems")

	e.observer.Start(len(jobs))
	defer e.observer.Finish()

	g := errgroup.Group{}
	g.SetLimit(workers)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			defer e.observer.Step(job.Name())

			if err := e.extractOne(ctx, job, options.KeepSilence); err != nil {
				summary.Fail(job.Name(), err)
				return nil
			}

			summary.OK(job.Name(), 1)
			return nil
		})
	}

	_ = g.Wait()

	return summary
}

func (e Extractor) extractOne(ctx context.Context, job Job, keepSilence bool) error {
	errctx := cerr.Fields(cerr.F{
		"track_id":    job.TrackID,
		"source_path": job.SourcePath,
	})

	if err := fsx.EnsureDir(filepath.Dir(job.DestPath)); err != nil {
		return errctx.Wrap(err).Error("Failed to prepare instrument directory")
	}

	logger := log.WithFields(log.Fields{
		"sourcePath": job.SourcePath,
		"destPath":   job.DestPath,
	})

	if keepSilence {
		if ctx.Err() != nil {
			return errctx.Wrap(ctx.Err()).Error("Context cancelled before copying")
		}

		logger.Info("Copying stem")
		if err := fsx.CopyFile(job.SourcePath, job.DestPath); err != nil {
			return errctx.Wrap(err).Error("Failed to copy stem")
		}

		return nil
	}

	logger.Info("Removing silence from stem")
	if err := e.remover.RemoveSilence(ctx, job.SourcePath, job.DestPath); err != nil {
		return errctx.Wrap(err).Error("Failed to remove silence from stem")
	}

	return nil
}
