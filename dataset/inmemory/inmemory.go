//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides a slice-backed dataset source, mainly for tests
// and programs that build their dataset in code.
package inmemory

import (
	"context"
	"iter"
	"slices"

	"trpc.group/trpc-go/trpc-rag-eval/dataset"
)

// Source iterates over a fixed slice of records.
type Source struct {
	records []dataset.Record
}

// New creates an in-memory dataset source. The records are copied so later
// mutation of the caller's slice does not affect iteration.
func New(records ...dataset.Record) *Source {
	return &Source{records: slices.Clone(records)}
}

// Records implements dataset.Source.
func (s *Source) Records(ctx context.Context) iter.Seq2[dataset.Record, error] {
	return func(yield func(dataset.Record, error) bool) {
		for _, record := range s.records {
			if err := ctx.Err(); err != nil {
				yield(dataset.Record{}, err)
				return
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

var _ dataset.Source = (*Source)(nil)
