//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package overall computes precision, recall and F1 between generated-answer
// claims and ground-truth claims.
package overall

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// Evaluator measures agreement between generated and ground-truth claims.
type Evaluator struct {
	judge judge.Judge
}

// New creates an overall claim evaluator.
func New(j judge.Judge) (*Evaluator, error) {
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	return &Evaluator{judge: j}, nil
}

// Evaluate judges each generated claim against the ground-truth set and vice
// versa. precision = supported generated / |generated|, recall = supported
// truth / |truth|, f1 = 2pr/(p+r) with 0 when p+r is 0.
func (e *Evaluator) Evaluate(ctx context.Context, generated, groundTruth claim.Set) (*report.OverallClaimReport, error) {
	supportedGenerated, err := evaluator.CountEntailed(ctx, e.judge, generated, groundTruth.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge generated claims: %w", err)
	}
	supportedTruth, err := evaluator.CountEntailed(ctx, e.judge, groundTruth, generated.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge ground truth claims: %w", err)
	}
	precision := evaluator.EdgeRatio(supportedGenerated, len(generated), len(groundTruth))
	recall := evaluator.EdgeRatio(supportedTruth, len(groundTruth), len(generated))
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return &report.OverallClaimReport{
		Precision: precision,
		Recall:    recall,
		F1Score:   f1,
	}, nil
}
