// Command tstbench loads synthetic keys into the tst, critbit and flat indices
// and compares their insert and wildcard search times.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

var VERSION = "$"

type Options struct {
	Keys     int      `short:"n" long:"keys" value-name:"COUNT" default:"20000" description:"number of synthetic keys to index"`
	Seed     int64    `long:"seed" default:"1" description:"random seed of the key generator"`
	Domains  []string `short:"p" long:"prefix" value-name:"DOMAIN" description:"key domain, repeatable. Defaults to a built-in list of ten domains"`
	Queries  []string `short:"q" long:"query" value-name:"PATTERN" description:"pattern to search, repeatable. Patterns are read from stdin when none is given. A trailing '*' matches any suffix, a '*' elsewhere matches one byte"`
	Parallel int      `long:"parallel" value-name:"COUNT" default:"1" description:"concurrent query workers, valid value [1, 64]"`
	LogLevel string   `long:"log-level" value-name:"LEVEL" default:"info" description:"debug, info, warn or error"`
	Print    bool     `long:"print" description:"print the keys matched by the tst index"`
	Version  bool     `short:"v" long:"version"`
}

func (o *Options) validate() error {
	if o.Keys < 1 {
		return fmt.Errorf("invalid option keys %d, expect int >= 1", o.Keys)
	}
	if o.Parallel < 1 || o.Parallel > 64 {
		return fmt.Errorf("invalid option parallel %d, expect 1 <= parallel <= 64", o.Parallel)
	}
	for _, domain := range o.Domains {
		if domain == "" {
			return fmt.Errorf("invalid option prefix: empty domain")
		}
	}
	return nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid option log-level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	var opts Options

	// go-flags prints parse errors to stderr itself
	args, err := flags.Parse(&opts)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println(VERSION)
		os.Exit(0)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unexpected args %+v\n", args)
		os.Exit(1)
	}

	log, err := newLogger(opts.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, log, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("tstbench failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options, log zerolog.Logger, in io.Reader, out io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}

	keys := GenerateKeys(opts.Seed, opts.Keys, opts.Domains)
	log.Info().Int("keys", len(keys)).Int64("seed", opts.Seed).Msg("keys generated")

	bench := NewBench(log, out, opts.Print)
	if err := bench.Load(keys); err != nil {
		return err
	}

	if len(opts.Queries) > 0 {
		return bench.RunQueries(ctx, opts.Queries, opts.Parallel)
	}
	return bench.ReadLoop(ctx, in)
}
