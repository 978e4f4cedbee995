//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package direct produces the six holistic judge scores for a question
// without any claim extraction.
package direct

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// Evaluator scores a question holistically with a single judge call.
type Evaluator struct {
	judge judge.Judge
}

// New creates a direct LLM evaluator.
func New(j judge.Judge) (*Evaluator, error) {
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	return &Evaluator{judge: j}, nil
}

// Evaluate scores the generated answer against the question, the joined
// newline-separated context and the ground-truth answer.
func (e *Evaluator) Evaluate(ctx context.Context, question, joinedContext, generated, groundTruth string) (*report.LLMEvaluationReport, error) {
	result, err := e.judge.Score(ctx, &judge.ScoreRequest{
		Question:    question,
		Context:     joinedContext,
		Generated:   generated,
		GroundTruth: groundTruth,
	})
	if err != nil {
		return nil, fmt.Errorf("judge score: %w", err)
	}
	return &report.LLMEvaluationReport{
		Groundedness:   result.Groundedness,
		Relevance:      result.Relevance,
		Coherence:      result.Coherence,
		Fluency:        result.Fluency,
		RetrievalScore: result.RetrievalScore,
		Similarity:     result.Similarity,
	}, nil
}
