package cmd

import (
	"fmt"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/spf13/cobra"

	"github.com/stac-tools/stac-fetch/catalog"
	"github.com/stac-tools/stac-fetch/config"
	"github.com/stac-tools/stac-fetch/content"
	"github.com/stac-tools/stac-fetch/fetcher"
)

var (
	fetchCatalogDir string
	fetchCollection string
	fetchKeys       []string
	fetchWorkers    int
	fetchRewrite    bool
	fetchPersist    bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch catalogued assets from the archive into object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Get()
		if err != nil {
			return err
		}

		store, closeStore, err := documentStore(ctx, fetchCatalogDir)
		if err != nil {
			return err
		}
		defer closeStore(ctx)

		cat, err := catalog.Load(ctx, store)
		if err != nil {
			return err
		}

		col, err := cat.Collection(fetchCollection)
		if err != nil {
			return err
		}

		s3c, err := s3Client(ctx, cfg)
		if err != nil {
			return err
		}
		target := content.NewStore(s3c)
		source := archiveClient(cfg)

		if err := preflight(ctx,
			check{"archive", source.Checker},
			check{"s3", target.Checker},
		); err != nil {
			return err
		}

		workers := fetchWorkers
		if workers <= 0 {
			workers = cfg.FetchWorkers
		}

		f := fetcher.New(source, target, fetcher.Resolver{Root: cfg.TargetRoot})
		report := f.Fetch(ctx, col, fetchKeys, fetcher.Options{
			Workers:        workers,
			Rewrite:        fetchRewrite,
			SkipExisting:   cfg.SkipExisting,
			Retries:        cfg.FetchRetries,
			InitialBackoff: cfg.FetchBackoffInitial,
			MaxBackoff:     cfg.FetchBackoffMax,
		})

		for _, res := range report.Failed {
			log.Warn(ctx, "asset fetch failed", log.Data{
				"item":  res.Item,
				"key":   res.Key,
				"error": res.Err.Error(),
			})
		}

		if fetchPersist && fetchRewrite {
			if err := catalog.Save(ctx, store, cat); err != nil {
				return err
			}
			log.Info(ctx, "catalog links updated", log.Data{"catalog": cat.ID})
		}

		if report.HasFailures() {
			return fmt.Errorf("%d of %d tasks failed", len(report.Failed),
				len(report.Failed)+len(report.Fetched)+len(report.Skipped))
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchCatalogDir, "catalog", ".", "directory holding the catalog documents")
	fetchCmd.Flags().StringVar(&fetchCollection, "collection", "", "collection identifier to fetch")
	fetchCmd.Flags().StringSliceVar(&fetchKeys, "keys", nil, "asset keys to fetch")
	fetchCmd.Flags().IntVar(&fetchWorkers, "workers", 0, "transfer worker pool size (0 = configured default)")
	fetchCmd.Flags().BoolVar(&fetchRewrite, "rewrite", true, "rewrite asset locations in the catalog after transfer")
	fetchCmd.Flags().BoolVar(&fetchPersist, "persist", true, "persist the catalog after fetching")
	_ = fetchCmd.MarkFlagRequired("collection")
	_ = fetchCmd.MarkFlagRequired("keys")
}
