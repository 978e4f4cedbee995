//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package dataset defines the ground-truth question source contract.
package dataset

import (
	"context"
	"iter"
)

// Record is one evaluation question with its reference answer.
type Record struct {
	Question string `json:"question"` // User question posed to the pipeline.
	Answer   string `json:"answer"`   // Ground-truth reference answer.
}

// Source yields evaluation records. A Source is restartable: every call to
// Records starts a fresh iteration over the full dataset.
type Source interface {
	// Records returns a lazy iterator over the dataset. Iteration stops at
	// the first error; a yielded error carries no usable record.
	Records(ctx context.Context) iter.Seq2[Record, error]
}
