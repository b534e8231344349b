package fetcher

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/stac-tools/stac-fetch/catalog"
)

// Generate mocks of dependencies
//
//go:generate moq -rm -pkg fetcher_test -out moq_clients_test.go . Source Target

// Source reads asset files from the remote archive.
type Source interface {
	// Size returns the advertised byte size of the file at href, or a
	// negative value when the archive does not advertise one.
	Size(ctx context.Context, href string) (int64, error)
	// Open streams the file at href. The returned size mirrors the
	// response content length and may be negative.
	Open(ctx context.Context, href string) (io.ReadCloser, int64, error)
}

// Target writes asset files to the storage backend assets are fetched into.
type Target interface {
	// Size returns the byte size of the object at key, and whether the
	// object exists at all.
	Size(ctx context.Context, key string) (size int64, exists bool, err error)
	// Write streams body to the object at key. size is advisory and may
	// be negative when unknown.
	Write(ctx context.Context, key, mediaType string, size int64, body io.Reader) error
	// URI returns the externally resolvable address of the object at key.
	URI(key string) string
}

// Options control one fetch batch.
type Options struct {
	// Workers is the size of the transfer worker pool.
	Workers int
	// Rewrite updates each asset's current location in the tree once its
	// transfer has completed.
	Rewrite bool
	// SkipExisting short-circuits transfers whose target already holds an
	// object of the same size as the source.
	SkipExisting bool
	// Retries bounds how often a failed transfer is reattempted.
	Retries        uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 4
	}
	if o.Retries == 0 {
		o.Retries = 3
	}
	if o.InitialBackoff <= 0 {
		o.InitialBackoff = 500 * time.Millisecond
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 5 * time.Second
	}
	return o
}

// Skip reasons recorded on results.
const (
	ReasonMissingKey = "asset key not present on item"
	ReasonExists     = "target already holds a matching copy"
)

// Result describes the outcome of one (item, key) task.
type Result struct {
	Collection string
	Item       string
	Key        string
	Source     string
	Target     string
	Bytes      int64
	Reason     string // set on skipped tasks
	Err        error  // set on failed tasks
}

// Report summarises a fetch batch. A batch always runs to completion;
// individual failures are collected here rather than aborting the rest.
type Report struct {
	BatchID string
	Fetched []Result
	Skipped []Result
	Failed  []Result
}

// HasFailures reports whether any task in the batch failed.
func (r Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// Data returns the report counts as log fields.
func (r Report) Data() log.Data {
	return log.Data{
		"batch_id": r.BatchID,
		"fetched":  len(r.Fetched),
		"skipped":  len(r.Skipped),
		"failed":   len(r.Failed),
	}
}

// Fetcher copies catalogued assets from a source archive into target
// storage, rewriting asset locations in the tree as transfers complete.
// It never persists the tree; that is the caller's decision.
type Fetcher struct {
	source   Source
	target   Target
	resolver Resolver
}

// New returns a Fetcher using the given source, target and resolver.
func New(source Source, target Target, resolver Resolver) *Fetcher {
	return &Fetcher{
		source:   source,
		target:   target,
		resolver: resolver,
	}
}

type task struct {
	collectionID string
	item         *catalog.Item
	asset        *catalog.Asset
	key          string
	source       string
	target       string
}

// Fetch copies every requested asset of every item under col. Items that
// lack a requested key are skipped; tasks run on a pool of opts.Workers
// workers with no ordering guarantee among them.
func (f *Fetcher) Fetch(ctx context.Context, col *catalog.Collection, keys []string, opts Options) Report {
	return f.fetch(ctx, col.ID, col.Items(), keys, opts)
}

// FetchItem copies the requested assets of a single item.
func (f *Fetcher) FetchItem(ctx context.Context, collectionID string, item *catalog.Item, keys []string, opts Options) Report {
	return f.fetch(ctx, collectionID, []*catalog.Item{item}, keys, opts)
}

func (f *Fetcher) fetch(ctx context.Context, collectionID string, items []*catalog.Item, keys []string, opts Options) Report {
	opts = opts.withDefaults()
	report := Report{BatchID: uuid.NewString()}

	var tasks []task
	for _, item := range items {
		for _, key := range keys {
			res := Result{Collection: collectionID, Item: item.ID, Key: key}

			if !item.HasAsset(key) {
				res.Reason = ReasonMissingKey
				report.Skipped = append(report.Skipped, res)
				continue
			}

			source, target, err := f.resolver.Resolve(collectionID, item, key)
			if err != nil {
				// a resolver error is a configuration error for this
				// task only; the batch carries on
				res.Err = err
				report.Failed = append(report.Failed, res)
				continue
			}

			asset, err := item.Asset(key)
			if err != nil {
				res.Err = err
				report.Failed = append(report.Failed, res)
				continue
			}

			tasks = append(tasks, task{
				collectionID: collectionID,
				item:         item,
				asset:        asset,
				key:          key,
				source:       source,
				target:       target,
			})
		}
	}

	log.Info(ctx, "starting fetch batch", log.Data{
		"batch_id":   report.BatchID,
		"collection": collectionID,
		"tasks":      len(tasks),
		"workers":    opts.Workers,
	})

	taskCh := make(chan task)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				results <- f.run(ctx, t, opts)
			}
		}()
	}

	go func() {
		for _, t := range tasks {
			taskCh <- t
		}
		close(taskCh)
		wg.Wait()
		close(results)
	}()

	for res := range results {
		switch {
		case res.Err != nil:
			log.Warn(ctx, "fetch task failed", log.Data{
				"batch_id": report.BatchID,
				"item":     res.Item,
				"key":      res.Key,
				"error":    res.Err.Error(),
			})
			report.Failed = append(report.Failed, res)
		case res.Reason != "":
			report.Skipped = append(report.Skipped, res)
		default:
			report.Fetched = append(report.Fetched, res)
		}
	}

	// completion order must not be observable in the report
	sortResults(report.Fetched)
	sortResults(report.Skipped)
	sortResults(report.Failed)

	log.Info(ctx, "fetch batch complete", report.Data())
	return report
}

// run executes a single transfer task: skip-if-exists probe, then a
// retried streaming copy, then the location rewrite. The tree is only
// touched after the task's own transfer has fully completed.
func (f *Fetcher) run(ctx context.Context, t task, opts Options) Result {
	res := Result{
		Collection: t.collectionID,
		Item:       t.item.ID,
		Key:        t.key,
		Source:     t.source,
		Target:     t.target,
	}

	if err := ctx.Err(); err != nil {
		res.Err = &TransferError{Collection: t.collectionID, Item: t.item.ID, Key: t.key, Err: err}
		return res
	}

	if opts.SkipExisting {
		skip, err := f.alreadyFetched(ctx, t)
		if err != nil {
			// probe failures are not fatal, the copy below decides
			log.Warn(ctx, "skip-if-exists probe failed, copying anyway", log.Data{
				"item": t.item.ID, "key": t.key, "error": err.Error(),
			})
		}
		if skip {
			res.Reason = ReasonExists
			if opts.Rewrite {
				t.asset.SetLocation(f.target.URI(t.target))
			}
			return res
		}
	}

	var written int64
	op := func() error {
		body, size, err := f.source.Open(ctx, t.source)
		if err != nil {
			return err
		}
		defer body.Close()

		if err := f.target.Write(ctx, t.target, t.asset.MediaType, size, body); err != nil {
			return err
		}
		if size > 0 {
			written = size
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.InitialBackoff
	bo.MaxInterval = opts.MaxBackoff
	bo.MaxElapsedTime = 0

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, opts.Retries), ctx)); err != nil {
		res.Err = &TransferError{Collection: t.collectionID, Item: t.item.ID, Key: t.key, Err: err}
		return res
	}

	res.Bytes = written
	if opts.Rewrite {
		t.asset.SetLocation(f.target.URI(t.target))
	}
	return res
}

// alreadyFetched reports whether the target already holds an object whose
// size matches the source's advertised size.
func (f *Fetcher) alreadyFetched(ctx context.Context, t task) (bool, error) {
	srcSize, err := f.source.Size(ctx, t.source)
	if err != nil {
		return false, err
	}
	if srcSize < 0 {
		return false, nil
	}

	tgtSize, exists, err := f.target.Size(ctx, t.target)
	if err != nil {
		return false, err
	}
	return exists && tgtSize == srcSize, nil
}

func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Item != results[j].Item {
			return results[i].Item < results[j].Item
		}
		return results[i].Key < results[j].Key
	})
}
