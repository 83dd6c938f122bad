package main

import (
	"context"
	"flag"
	"os"

	"github.com/veedubyou/stem-curator/src/curator/application"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/config/dev"
	"github.com/veedubyou/stem-curator/src/shared/config/envvar"
)

// import-catalog loads a MedleyDB checkout into the DynamoDB track catalog.
// Run it with CURATOR_METADATA_SOURCE=dynamo.
func main() {
	flags := flag.NewFlagSet("import-catalog", flag.ContinueOnError)
	common := application.RegisterCommonFlags(flags)

	medleyDB := flags.String("medleydb", "", "MedleyDB root, defaults to MEDLEYDB_PATH")

	os.Exit(application.Run(flags, os.Args[1:], common, func(ctx context.Context, config application.Config) (*report.Summary, error) {
		metadataSource, err := application.MetadataSourceFromEnv()
		if err != nil {
			return nil, err
		}
		config.MetadataSource = metadataSource

		root := *medleyDB
		if root == "" {
			root = envvar.GetOrDefault(envvar.MEDLEYDB_PATH, dev.MedleyDBPath)
		}

		return application.NewApp(config).ImportCatalog(ctx, root)
	}))
}
