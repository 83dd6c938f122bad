package main

import (
	"context"
	"flag"
	"os"

	"github.com/veedubyou/stem-curator/src/curator/application"
	"github.com/veedubyou/stem-curator/src/curator/internal/categorydir"
	"github.com/veedubyou/stem-curator/src/curator/internal/partition"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
)

func main() {
	flags := flag.NewFlagSet("split-test-set", flag.ContinueOnError)
	common := application.RegisterCommonFlags(flags)

	location := flags.String("location", string(partition.Last), "which files of each category to move: first, last or random")
	sourceDir := flags.String("source_dir", "./data/train", "tree to take files from")
	destDir := flags.String("dest_dir", "./data/test", "tree to move files into")
	numItems := flags.Int("num_items", 1, "files to move per category")
	seed := flags.Int64("seed", 0, "seed for the random location, 0 picks one from the clock")
	ext := flags.String("ext", ".wav", "comma separated audio file extensions")

	os.Exit(application.Run(flags, os.Args[1:], common, func(ctx context.Context, config application.Config) (*report.Summary, error) {
		policy, err := partition.ParsePolicy(*location)
		if err != nil {
			return nil, err
		}

		return application.NewApp(config).SplitTestSet(ctx, application.SplitOptions{
			SourceDir:  *sourceDir,
			DestDir:    *destDir,
			Policy:     policy,
			Count:      *numItems,
			Seed:       *seed,
			Extensions: categorydir.ParseExtensions(*ext),
		})
	}))
}
