// Package fasta streams DNA records from FASTA files, gzip archives, or
// stdin. Sequences are uppercased on load; alphabet validation is the
// caller's concern (the engines tolerate dirty bytes by resetting).
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// StreamCtx parses FASTA from r and calls emit once per record. Sequence
// lines are concatenated and uppercased; blank lines are skipped. The
// parse checks ctx between lines and returns promptly when it is done.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur  Record
		open bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		open = false
		rec := cur
		cur = Record{}
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := splitHeader(line[1:])
			cur = Record{ID: id, Description: desc}
			open = true
			continue
		}
		if !open {
			// Sequence data before any header: tolerate with a synthetic id.
			cur = Record{ID: "unnamed"}
			open = true
		}
		cur.Seq = append(cur.Seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func splitHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

// StreamPathCtx streams records from path (see Open for path semantics).
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, emit)
}

// ReadAllCtx loads every record from path into memory.
func ReadAllCtx(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadAll is ReadAllCtx with a background context.
func ReadAll(path string) ([]Record, error) {
	return ReadAllCtx(context.Background(), path)
}
