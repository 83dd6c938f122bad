package application

import (
	"context"
	"math/rand"
	"time"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/curator/internal/extract"
	"github.com/veedubyou/stem-curator/src/curator/internal/instrument"
	"github.com/veedubyou/stem-curator/src/curator/internal/normalize"
	"github.com/veedubyou/stem-curator/src/curator/internal/partition"
	"github.com/veedubyou/stem-curator/src/curator/internal/publish"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/curator/internal/storagepath"
	"github.com/veedubyou/stem-curator/src/shared/config"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/executor"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
	trackstorage "github.com/veedubyou/stem-curator/src/shared/track/storage"
)

type Config struct {
	MetadataSource     config.MetadataSource
	CloudStorageConfig config.CloudStorage
	SoxBinPath         string
	Progress           bool
}

type App struct {
	config      Config
	executor    executor.Executor
	trackSource trackentity.Source
}

func NewApp(config Config) App {
	return NewAppWithExecutor(config, executor.BinaryFileExecutor{})
}

// NewAppWithExecutor runs external tools through executor instead of the host.
func NewAppWithExecutor(config Config, executor executor.Executor) App {
	return App{
		config:   config,
		executor: executor,
	}
}

// WithTrackSource reads tracks from source instead of the configured
// metadata source.
func (a App) WithTrackSource(source trackentity.Source) App {
	a.trackSource = source
	return a
}

type ExtractOptions struct {
	Destination string
	Selection   instrument.Selection
	KeepSilence bool
	Workers     int
}

func (a App) ExtractStems(ctx context.Context, options ExtractOptions) (*report.Summary, error) {
	source := a.trackSource
	if source == nil {
		configured, err := newTrackSource(a.config.MetadataSource)
		if err != nil {
			return nil, err
		}
		source = configured
	}

	tracks, err := source.ListTracks(ctx)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to load track metadata")
	}

	valid, err := instrument.Resolve(options.Selection, tracks)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to decide which instruments to extract")
	}

	log.WithFields(log.Fields{
		"tracks":      len(tracks),
		"instruments": valid.Sorted(),
	}).Info("Valid instruments")

	var remover extract.SilenceRemover
	if !options.KeepSilence {
		soxTool, err := newSoxTool(a.config.SoxBinPath, a.executor)
		if err != nil {
			return nil, err
		}
		remover = soxTool
	}

	extractor := extract.NewExtractor(remover, a.observer("Extracting"))
	summary := extractor.Extract(ctx, tracks, valid, extract.Options{
		DestinationRoot: options.Destination,
		KeepSilence:     options.KeepSilence,
		Workers:         options.Workers,
	})

	return summary, nil
}

type SplitOptions struct {
	SourceDir  string
	DestDir    string
	Policy     partition.Policy
	Count      int
	Seed       int64
	Extensions []string
}

func (a App) SplitTestSet(ctx context.Context, options SplitOptions) (*report.Summary, error) {
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.WithField("seed", seed).Debug("Seeded random partition policy")

	partitioner := partition.NewPartitioner(rand.New(rand.NewSource(seed)), a.observer("Partitioning"))
	return partitioner.Partition(ctx, partition.Request{
		SourceTree:      options.SourceDir,
		DestinationTree: options.DestDir,
		Policy:          options.Policy,
		Count:           options.Count,
		Extensions:      options.Extensions,
	})
}

type TrimOptions struct {
	SourceDir   string
	TotalLength float64
	Extensions  []string
}

func (a App) TrimToTotal(ctx context.Context, options TrimOptions) (*report.Summary, error) {
	soxTool, err := newSoxTool(a.config.SoxBinPath, a.executor)
	if err != nil {
		return nil, err
	}

	normalizer := normalize.NewNormalizer(soxTool, a.observer("Trimming"))
	return normalizer.NormalizeTree(ctx, options.SourceDir, options.TotalLength, options.Extensions...)
}

type PublishOptions struct {
	SourceDir  string
	Prefix     string
	Extensions []string
}

func (a App) PublishDataset(ctx context.Context, options PublishOptions) (*report.Summary, error) {
	if a.config.CloudStorageConfig == nil {
		return nil, mark.Message(ConfigInvalid, "No cloud storage is configured")
	}

	paths := storagepath.Generator{
		Host:   a.config.CloudStorageConfig.GetStorageHost(),
		Bucket: a.config.CloudStorageConfig.GetBucket(),
		Prefix: options.Prefix,
	}

	publisher := publish.NewPublisher(newGoogleFileStore(a.config.CloudStorageConfig), paths, a.observer("Uploading"))
	return publisher.Publish(ctx, options.SourceDir, options.Extensions...)
}

// ImportCatalog copies the tracks of a MedleyDB checkout into the configured
// DynamoDB catalog, one unit per track.
func (a App) ImportCatalog(ctx context.Context, medleyDBRoot string) (*report.Summary, error) {
	catalog, ok := newCatalog(a.config.MetadataSource)
	if !ok {
		return nil, mark.Message(ConfigInvalid, "Importing needs a DynamoDB catalog as the metadata source")
	}

	tracks, err := trackstorage.NewMedleyDB(medleyDBRoot).ListTracks(ctx)
	if err != nil {
		return nil, cerr.Wrap(err).Error("Failed to load MedleyDB metadata")
	}

	summary := report.NewSummary("import-catalog")
	observer := a.observer("Importing")
	observer.Start(len(tracks))
	defer observer.Finish()

	for _, track := range tracks {
		if err := catalog.PutTrack(ctx, track); err != nil {
			summary.Fail(track.ID, err)
		} else {
			summary.OK(track.ID, len(track.Stems))
		}
		observer.Step(track.ID)
	}

	return summary, nil
}
