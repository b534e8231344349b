package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	s3client "github.com/ONSdigital/dp-s3/v3"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/stac-tools/stac-fetch/archive"
	"github.com/stac-tools/stac-fetch/catalog"
	"github.com/stac-tools/stac-fetch/config"
	"github.com/stac-tools/stac-fetch/content"
	"github.com/stac-tools/stac-fetch/mongo"
)

// s3Client obtains a new S3 client, or a local object store client if a
// non-empty LocalObjectStore is configured.
func s3Client(ctx context.Context, cfg *config.Config) (content.S3Client, error) {
	if cfg.LocalObjectStore != "" {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
			awsConfig.WithRegion(cfg.AwsRegion),
			awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MinioAccessKey, cfg.MinioSecretKey, "")),
		)
		if err != nil {
			return nil, fmt.Errorf("could not create aws config: %w", err)
		}

		return s3client.NewClientWithConfig(cfg.BucketName, awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.LocalObjectStore)
			o.UsePathStyle = true
		}), nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		return nil, fmt.Errorf("could not create aws config: %w", err)
	}
	return s3client.NewClientWithConfig(cfg.BucketName, awsCfg), nil
}

// archiveClient builds the remote archive client, optionally with a traced
// transport.
func archiveClient(cfg *config.Config) *archive.Client {
	if cfg.TracingEnabled {
		return archive.NewClient(cfg.ArchiveBaseURL, &tracedHTTPClient{
			cli: &http.Client{
				Transport: otelhttp.NewTransport(http.DefaultTransport),
				Timeout:   30 * time.Second,
			},
		})
	}
	return archive.NewClient(cfg.ArchiveBaseURL, dphttp.NewClient())
}

// documentStore returns the configured catalog store: the mongo store when
// enabled, otherwise a filesystem store rooted at dir. The returned
// function releases the store's resources.
func documentStore(ctx context.Context, dir string) (catalog.DocumentStore, func(context.Context), error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, nil, err
	}

	if cfg.EnableMongo {
		m, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return m, func(ctx context.Context) {
			if err := m.Close(ctx); err != nil {
				log.Error(ctx, "error closing mongo client", err)
			}
		}, nil
	}

	return catalog.NewFileStore(dir), func(context.Context) {}, nil
}

// tracedHTTPClient adapts a net/http client to the archive's HTTPClient so
// requests flow through the otel transport.
type tracedHTTPClient struct {
	cli *http.Client
}

func (c *tracedHTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, url)
}

func (c *tracedHTTPClient) Head(ctx context.Context, url string) (*http.Response, error) {
	return c.do(ctx, http.MethodHead, url)
}

func (c *tracedHTTPClient) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return c.cli.Do(req)
}
