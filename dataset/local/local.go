//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package local provides a JSON-lines file dataset source.
package local

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"

	"trpc.group/trpc-go/trpc-rag-eval/dataset"
)

// Source reads records lazily from a JSON-lines file, one record per line.
// Blank lines are skipped. Each call to Records reopens the file, so the
// source is restartable.
type Source struct {
	path string
}

// New creates a file-backed dataset source. The file is not opened until
// iteration starts.
func New(path string) (*Source, error) {
	if path == "" {
		return nil, errors.New("dataset path is empty")
	}
	return &Source{path: path}, nil
}

// Records implements dataset.Source.
func (s *Source) Records(ctx context.Context) iter.Seq2[dataset.Record, error] {
	return func(yield func(dataset.Record, error) bool) {
		file, err := os.Open(s.path)
		if err != nil {
			yield(dataset.Record{}, fmt.Errorf("open dataset file: %w", err))
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			if err := ctx.Err(); err != nil {
				yield(dataset.Record{}, err)
				return
			}
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}
			var record dataset.Record
			if err := json.Unmarshal(raw, &record); err != nil {
				yield(dataset.Record{}, fmt.Errorf("decode dataset line %d: %w", line, err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(dataset.Record{}, fmt.Errorf("read dataset file: %w", err))
		}
	}
}

var _ dataset.Source = (*Source)(nil)
