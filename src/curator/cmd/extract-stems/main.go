package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/veedubyou/stem-curator/src/curator/application"
	"github.com/veedubyou/stem-curator/src/curator/internal/instrument"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
)

func main() {
	flags := flag.NewFlagSet("extract-stems", flag.ContinueOnError)
	common := application.RegisterCommonFlags(flags)

	destination := flags.String("destination", "./data/train", "tree to write one directory per instrument into")
	minSources := flags.Int("min_sources", 10, "bleed-free tracks an instrument needs to be extracted")
	instruments := flags.String("instruments", "", "comma separated instruments to extract, skipping the min_sources count")
	keepSilence := flags.Bool("keep_silence", false, "copy stems as they are instead of removing silence")
	workers := flags.Int("workers", 0, "concurrent silence removals, 0 uses every CPU")

	os.Exit(application.Run(flags, os.Args[1:], common, func(ctx context.Context, config application.Config) (*report.Summary, error) {
		metadataSource, err := application.MetadataSourceFromEnv()
		if err != nil {
			return nil, err
		}
		config.MetadataSource = metadataSource

		var selection instrument.Selection = instrument.Derive{MinSources: *minSources}
		if *instruments != "" {
			selection = instrument.Explicit{Instruments: splitList(*instruments)}
		}

		return application.NewApp(config).ExtractStems(ctx, application.ExtractOptions{
			Destination: *destination,
			Selection:   selection,
			KeepSilence: *keepSilence,
			Workers:     *workers,
		})
	}))
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
