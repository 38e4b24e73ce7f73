package scheduler

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/thisisamank/thisisamank.in/internal/domain"
	"github.com/thisisamank/thisisamank.in/internal/index"
	"github.com/thisisamank/thisisamank.in/internal/logger"
	"github.com/thisisamank/thisisamank.in/internal/sources/content"
)

// ContentReloaderOptions tunes a ContentReloader.
type ContentReloaderOptions struct {
	Extensions  []string      // content file extensions (".md")
	Workers     int           // parallel parsers per load cycle
	SkipInvalid bool          // log and drop invalid entries instead of failing the cycle
	Interval    time.Duration // 0 disables periodic reloads
}

// ContentReloader runs load cycles: discover, parse, validate, index, swap.
type ContentReloader struct {
	loader        *content.Loader
	mapper        *content.Mapper
	current       *index.Current
	logger        logger.Logger
	skipInvalid   bool
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a reloader that publishes into current.
func NewContentReloader(
	fsys fs.FS,
	current *index.Current,
	log logger.Logger,
	opts ContentReloaderOptions,
	manualTrigger chan struct{},
) *ContentReloader {
	return &ContentReloader{
		loader:        content.NewLoader(fsys, opts.Extensions),
		mapper:        content.NewMapper(opts.Workers),
		current:       current,
		logger:        log,
		skipInvalid:   opts.SkipInvalid,
		interval:      opts.Interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs the initial load cycle and returns its error, then keeps
// reloading on the ticker (if any) and on manual triggers.
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}

	go func() {
		var tick <-chan time.Time
		if cr.interval > 0 {
			ticker := time.NewTicker(cr.interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-tick:
				cr.reloadAndLog(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				cr.reloadAndLog(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

func (cr *ContentReloader) reloadAndLog(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("reload failed, keeping previous index", logger.Error(err))
	}
}

// Reload performs one complete load cycle. On success the new index
// replaces the active one; on failure the active index is left untouched.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	start := time.Now()
	cr.logger.Debug("loading content")

	sources, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to discover content: %w", err)
	}

	entries, err := cr.mapper.MapAll(ctx, sources)
	if err != nil {
		invalid := domain.ValidationErrors(err)
		if len(invalid) == 0 {
			return fmt.Errorf("failed to parse content: %w", err)
		}
		if !cr.skipInvalid {
			return fmt.Errorf("%d invalid content entries: %w", len(invalid), err)
		}
		for _, verr := range invalid {
			cr.logger.Warn("skipping invalid content entry",
				logger.String("id", verr.ID),
				logger.String("field", verr.Field),
				logger.String("reason", verr.Reason))
		}
	}

	// Duplicate identifiers are always fatal: which copy survives would
	// depend on discovery order.
	idx, err := index.New(entries)
	if err != nil {
		return fmt.Errorf("conflicting identifiers: %w", err)
	}

	cr.current.Store(idx)

	cr.logger.Info("content loaded",
		logger.Int("sources", len(sources)),
		logger.Int("entries", idx.Len()),
		logger.Int("drafts", idx.Drafts()),
		logger.Int("skipped", len(sources)-len(entries)),
		logger.Duration("took", time.Since(start)))

	return nil
}
