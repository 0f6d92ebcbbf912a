package loader

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultRecursionLimit = 100

// BatchLoader assembles an entity from a chain of pages linked by next urls.
type BatchLoader[E any] struct {
	// LoadNext fetches the first page when next is nil, the linked page otherwise.
	LoadNext func(ctx context.Context, next *string) (E, error)
	// Merge appends page to the accumulated entity.
	Merge func(acc, page E) E
	// NextLink returns the link to the page following page, if any.
	NextLink func(page E) *string

	// RecursionLimit bounds the number of loaded pages.
	// Zero means DefaultRecursionLimit.
	RecursionLimit int
}

// Load follows next links until there are none or the recursion limit is hit.
// A failure of any page after the first one ends the chain with what was loaded.
func (b *BatchLoader[E]) Load(ctx context.Context) (E, error) { //nolint:ireturn // generic
	limit := b.RecursionLimit
	if limit <= 0 {
		limit = DefaultRecursionLimit
	}

	acc, err := b.LoadNext(ctx, nil)
	if err != nil {
		var zero E
		return zero, errors.Wrap(err, "load first page")
	}

	next := b.NextLink(acc)
	for pages := 1; next != nil; pages++ {
		if pages >= limit {
			log.Warn().Int("limit", limit).Str("next", *next).Msg("batch recursion limit reached")
			break
		}

		page, err := b.LoadNext(ctx, next)
		if err != nil {
			log.Error().Err(err).Str("next", *next).Int("pages", pages).Msg("load next page")
			break
		}

		acc = b.Merge(acc, page)
		next = b.NextLink(page)
	}

	return acc, nil
}

// Loader wraps the batch load into a Loader.
func (b *BatchLoader[E]) Loader(cfg *Config) *Loader[E] {
	return New(b.Load, cfg)
}
