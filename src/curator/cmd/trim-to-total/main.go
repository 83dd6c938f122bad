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
	flags := flag.NewFlagSet("trim-to-total", flag.ContinueOnError)
	common := application.RegisterCommonFlags(flags)

	sourceDir := flags.String("source_dir", "./data/train", "tree whose category directories get trimmed")
	totalLength := flags.Float64("total_length", 1, "seconds of audio to keep per category")
	ext := flags.String("ext", ".wav", "comma separated audio file extensions")

	os.Exit(application.Run(flags, os.Args[1:], common, func(ctx context.Context, config application.Config) (*report.Summary, error) {
		return application.NewApp(config).TrimToTotal(ctx, application.TrimOptions{
			SourceDir:   *sourceDir,
			TotalLength: *totalLength,
			Extensions:  categorydir.ParseExtensions(*ext),
		})
	}))
}
