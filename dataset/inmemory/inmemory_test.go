//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/dataset"
)

func TestInMemorySourceYieldsAll(t *testing.T) {
	src := New(
		dataset.Record{Question: "q1", Answer: "a1"},
		dataset.Record{Question: "q2", Answer: "a2"},
	)

	var records []dataset.Record
	for record, err := range src.Records(context.Background()) {
		require.NoError(t, err)
		records = append(records, record)
	}
	assert.Equal(t, []dataset.Record{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
	}, records)
}

func TestInMemorySourceCopiesInput(t *testing.T) {
	input := []dataset.Record{{Question: "q1", Answer: "a1"}}
	src := New(input...)
	input[0].Question = "mutated"

	for record, err := range src.Records(context.Background()) {
		require.NoError(t, err)
		assert.Equal(t, "q1", record.Question)
	}
}

func TestInMemorySourceCancellation(t *testing.T) {
	src := New(dataset.Record{Question: "q1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, err := range src.Records(ctx) {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
