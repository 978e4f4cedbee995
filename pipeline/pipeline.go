//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package pipeline defines the contract the evaluated RAG system implements.
package pipeline

import "context"

// ContextChunk is one retrieved context passage, kept separate from its
// siblings so per-chunk metrics can attribute claims to their origin.
type ContextChunk struct {
	Context string `json:"context"`
}

// Pipeline is the system under evaluation. Generate answers the question and
// returns the generated answer together with the retrieved context chunks in
// retrieval order. Any error is treated as fatal by the evaluation run.
type Pipeline interface {
	Generate(ctx context.Context, question string) (string, []ContextChunk, error)
}

// Texts returns the raw passage of every chunk, preserving order.
func Texts(chunks []ContextChunk) []string {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Context
	}
	return texts
}
