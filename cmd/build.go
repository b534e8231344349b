package cmd

import (
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/spf13/cobra"

	"github.com/stac-tools/stac-fetch/catalog"
)

var (
	buildManifest string
	buildOut      string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a catalog from a dataset manifest and persist it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		manifest, err := catalog.LoadManifest(buildManifest)
		if err != nil {
			return err
		}

		cat, err := manifest.Build()
		if err != nil {
			return err
		}

		store, closeStore, err := documentStore(ctx, buildOut)
		if err != nil {
			return err
		}
		defer closeStore(ctx)

		if err := catalog.Save(ctx, store, cat); err != nil {
			return err
		}

		collections := cat.Collections()
		items := 0
		for _, col := range collections {
			items += len(col.Items())
		}
		log.Info(ctx, "catalog built", log.Data{
			"catalog":     cat.ID,
			"collections": len(collections),
			"items":       items,
			"out":         buildOut,
		})
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildManifest, "manifest", "manifest.yaml", "path to the dataset manifest")
	buildCmd.Flags().StringVar(&buildOut, "out", ".", "directory to write catalog documents to")
}
