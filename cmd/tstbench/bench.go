package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aglyzov/tstindex/critbit"
	"github.com/aglyzov/tstindex/flat"
	"github.com/aglyzov/tstindex/tst"
)

type searcher interface {
	Insert(key string) error
	Search(pattern string) ([]string, error)
}

type flatSearcher struct {
	*flat.Store
}

func (s flatSearcher) Search(pattern string) ([]string, error) {
	return s.Store.Search(pattern), nil
}

type target struct {
	name    string
	index   searcher
	total   time.Duration
	longest time.Duration
}

type Result struct {
	Index   string
	Count   int
	Elapsed time.Duration
	Keys    []string
}

// Bench loads the same keys into every index and times lookups on them.
type Bench struct {
	targets []*target
	log     zerolog.Logger
	print   bool

	outMu sync.Mutex
	out   io.Writer
}

func NewBench(log zerolog.Logger, out io.Writer, print bool) *Bench {
	return &Bench{
		targets: []*target{
			{name: "tst", index: tst.New()},
			{name: "critbit", index: critbit.NewSet()},
			{name: "flat", index: flatSearcher{flat.New()}},
		},
		log:   log,
		print: print,
		out:   out,
	}
}

// Load inserts keys into every index, timing each insert.
func (b *Bench) Load(keys []string) error {
	for i, key := range keys {
		if i%10_000 == 0 {
			b.log.Debug().Int("progress", i).Msg("loading")
		}
		for _, t := range b.targets {
			start := time.Now()
			if err := t.index.Insert(key); err != nil {
				return fmt.Errorf("%s: key %d: %w", t.name, i, err)
			}
			elapsed := time.Since(start)

			t.total += elapsed
			if elapsed > t.longest {
				t.longest = elapsed
			}
		}
	}

	for _, t := range b.targets {
		var avg time.Duration
		if len(keys) > 0 {
			avg = t.total / time.Duration(len(keys))
		}
		b.log.Info().
			Str("index", t.name).
			Int("keys", len(keys)).
			Dur("avg", avg).
			Dur("longest", t.longest).
			Msg("insert time")
	}
	return nil
}

// Query runs the pattern against every index.
func (b *Bench) Query(pattern string) ([]Result, error) {
	results := make([]Result, 0, len(b.targets))

	for _, t := range b.targets {
		start := time.Now()
		keys, err := t.index.Search(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, err)
		}
		results = append(results, Result{
			Index:   t.name,
			Count:   len(keys),
			Elapsed: time.Since(start),
			Keys:    keys,
		})
	}
	return results, nil
}

// report queries and logs one pattern. Bad patterns are logged and skipped.
func (b *Bench) report(pattern string) {
	results, err := b.Query(pattern)
	if err != nil {
		b.log.Warn().Err(err).Str("pattern", pattern).Msg("search failed")
		return
	}

	for _, r := range results {
		b.log.Info().
			Str("pattern", pattern).
			Str("index", r.Index).
			Int("count", r.Count).
			Dur("elapsed", r.Elapsed).
			Msg("search")
	}

	if b.print && len(results) > 0 {
		b.outMu.Lock()
		defer b.outMu.Unlock()

		for _, key := range results[0].Keys {
			fmt.Fprintln(b.out, key)
		}
	}
}

// RunQueries reports every pattern using up to parallel workers.
// The indices are not modified any more, so concurrent lookups are safe.
func (b *Bench) RunQueries(ctx context.Context, patterns []string, parallel int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for _, pattern := range patterns {
		pattern := pattern

		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.report(pattern)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ReadLoop reports patterns read line by line until EOF.
func (b *Bench) ReadLoop(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	for {
		b.prompt()
		if !sc.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		pattern := strings.TrimSpace(sc.Text())
		if pattern == "" {
			continue
		}
		b.report(pattern)
	}

	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read patterns: %w", err)
	}
	return nil
}

func (b *Bench) prompt() {
	b.outMu.Lock()
	defer b.outMu.Unlock()

	fmt.Fprint(b.out, "Enter key to search: ")
}
