// Package pipeline fans FASTA records out to a pool of scan workers that
// share one immutable automaton. The engines hold no mutable scan state,
// so a single built automaton serves every worker without locking.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"motifscan-core/engine"
	"motifscan-core/fasta"
)

// Scanner is the read-only automaton contract both engines satisfy.
type Scanner interface {
	Match(text []byte) []engine.Match
}

// Config controls the scanning pipeline.
type Config struct {
	Workers int // scan goroutines; 0 = all CPUs
}

// RecordMatches is the per-record result delivered to the visit callback.
type RecordMatches struct {
	SequenceID string
	SourceFile string
	Matches    []engine.Match
}

// ForEachRecord streams FASTA records from files through the worker pool
// and calls visit once per record, always from a single goroutine. Record
// order across workers is not guaranteed; callers needing determinism
// sort afterwards. The first error (including context cancellation) wins.
func ForEachRecord(ctx context.Context, cfg Config, files []string, s Scanner, visit func(RecordMatches) error) error {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}

	type job struct {
		rec  fasta.Record
		file string
	}
	jobs := make(chan job, cfg.Workers*2)
	results := make(chan RecordMatches, cfg.Workers*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				rm := RecordMatches{
					SequenceID: j.rec.ID,
					SourceFile: j.file,
					Matches:    s.Match(j.rec.Seq),
				}
				select {
				case results <- rm:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for rm := range results {
			if cerr != nil {
				continue
			}
			if err := visit(rm); err != nil {
				cerr = err
			}
		}
	}()

	feedErr := func() error {
		for _, path := range files {
			err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case jobs <- job{rec: rec, file: path}:
					return nil
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	}()

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if feedErr != nil {
		return feedErr
	}
	if cerr != nil {
		return cerr
	}
	return ctx.Err()
}
