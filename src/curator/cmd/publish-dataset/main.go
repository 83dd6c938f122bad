package main

import (
	"context"
	"flag"
	"os"

	"github.com/veedubyou/stem-curator/src/curator/application"
	"github.com/veedubyou/stem-curator/src/curator/internal/categorydir"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
)

func main() {
	flags := flag.NewFlagSet("publish-dataset", flag.ContinueOnError)
	common := application.RegisterCommonFlags(flags)

	source := flags.String("source", "./data/train", "tree to upload")
	bucket := flags.String("bucket", "", "bucket to upload into, defaults to the configured one")
	prefix := flags.String("prefix", "", "object prefix, e.g. train")
	ext := flags.String("ext", ".wav", "comma separated audio file extensions")

	os.Exit(application.Run(flags, os.Args[1:], common, func(ctx context.Context, config application.Config) (*report.Summary, error) {
		config.CloudStorageConfig = application.CloudStorageFromEnv(*bucket)

		return application.NewApp(config).PublishDataset(ctx, application.PublishOptions{
			SourceDir:  *source,
			Prefix:     *prefix,
			Extensions: categorydir.ParseExtensions(*ext),
		})
	}))
}
