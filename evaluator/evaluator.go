//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package evaluator provides the shared matching primitives used by the
// claim evaluators: entailment counting against a premise set and the
// empty-set ratio policy.
package evaluator

import (
	"context"
	"fmt"

	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

// EdgeRatio computes count/denominator with the empty-set policy shared by
// every claim metric: an empty denominator yields 1.0 when the other claim
// set involved in the comparison is also empty (vacuously fully supported)
// and 0.0 otherwise. Never divides by zero.
func EdgeRatio(count, denominator, other int) float64 {
	if denominator == 0 {
		if other == 0 {
			return 1.0
		}
		return 0.0
	}
	return float64(count) / float64(denominator)
}

// EntailedFlags judges every claim against the premise texts and returns one
// verdict per claim, in claim order. An empty premise set entails nothing,
// so no judge calls are made for it.
func EntailedFlags(ctx context.Context, j judge.Judge, claims claim.Set, premises []string) ([]bool, error) {
	flags := make([]bool, len(claims))
	if len(premises) == 0 {
		return flags, nil
	}
	for i, c := range claims {
		ok, err := j.JudgeEntailment(ctx, c.Text, premises)
		if err != nil {
			return nil, fmt.Errorf("judge entailment for claim %d: %w", i, err)
		}
		flags[i] = ok
	}
	return flags, nil
}

// CountEntailed counts the claims entailed by the premise texts.
func CountEntailed(ctx context.Context, j judge.Judge, claims claim.Set, premises []string) (int, error) {
	flags, err := EntailedFlags(ctx, j, claims, premises)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, ok := range flags {
		if ok {
			count++
		}
	}
	return count, nil
}
