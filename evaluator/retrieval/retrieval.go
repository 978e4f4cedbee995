//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package retrieval computes claim recall and context precision between
// ground-truth claims and pooled retrieved-context claims.
package retrieval

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// Evaluator measures how well the retrieved context covers the ground truth.
type Evaluator struct {
	judge judge.Judge
}

// New creates a retrieval claim evaluator.
func New(j judge.Judge) (*Evaluator, error) {
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	return &Evaluator{judge: j}, nil
}

// Evaluate computes claimRecall, the fraction of ground-truth claims entailed
// by the pooled context claims, and contextPrecision, the fraction of context
// claims supported by the ground-truth set.
func (e *Evaluator) Evaluate(ctx context.Context, groundTruth, contextClaims claim.Set) (*report.RetrievalClaimReport, error) {
	recalled, err := evaluator.CountEntailed(ctx, e.judge, groundTruth, contextClaims.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge ground truth claims: %w", err)
	}
	relevant, err := evaluator.CountEntailed(ctx, e.judge, contextClaims, groundTruth.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge context claims: %w", err)
	}
	return &report.RetrievalClaimReport{
		ClaimRecall:      evaluator.EdgeRatio(recalled, len(groundTruth), len(contextClaims)),
		ContextPrecision: evaluator.EdgeRatio(relevant, len(contextClaims), len(groundTruth)),
	}, nil
}
