package cmd

import (
	"context"
	"errors"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/spf13/cobra"

	"github.com/stac-tools/stac-fetch/config"
	"github.com/stac-tools/stac-fetch/content"
	"github.com/stac-tools/stac-fetch/mongo"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the archive and the target storage are reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Get()
		if err != nil {
			return err
		}

		checks := []check{
			{"archive", archiveClient(cfg).Checker},
		}

		s3c, err := s3Client(ctx, cfg)
		if err != nil {
			return err
		}
		checks = append(checks, check{"s3", content.NewStore(s3c).Checker})

		if cfg.EnableMongo {
			m, err := mongo.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := m.Close(ctx); err != nil {
					log.Error(ctx, "error closing mongo client", err)
				}
			}()
			checks = append(checks, check{"mongo", m.Checker})
		}

		return preflight(ctx, checks...)
	},
}

type check struct {
	name    string
	checker healthcheck.Checker
}

// preflight runs each checker once and fails if any dependency reports
// critical.
func preflight(ctx context.Context, checks ...check) error {
	var unhealthy bool

	for _, c := range checks {
		state := healthcheck.NewCheckState(c.name)
		if err := c.checker(ctx, state); err != nil {
			log.Error(ctx, "error running check", err, log.Data{"check": c.name})
			unhealthy = true
			continue
		}

		log.Info(ctx, "dependency check", log.Data{
			"check":   c.name,
			"status":  state.Status(),
			"message": state.Message(),
		})
		if state.Status() != healthcheck.StatusOK {
			unhealthy = true
		}
	}

	if unhealthy {
		return errors.New("one or more dependencies are unhealthy")
	}
	return nil
}
