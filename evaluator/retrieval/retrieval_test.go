//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

type membershipJudge struct{}

func (membershipJudge) ExtractClaims(context.Context, string) ([]judge.RawClaim, error) {
	return nil, nil
}

func (membershipJudge) JudgeEntailment(_ context.Context, c string, premises []string) (bool, error) {
	return slices.Contains(premises, c), nil
}

func (membershipJudge) Score(context.Context, *judge.ScoreRequest) (*judge.ScoreResult, error) {
	return nil, nil
}

func claims(texts ...string) claim.Set {
	set := make(claim.Set, len(texts))
	for i, text := range texts {
		set[i] = claim.Claim{Text: text}
	}
	return set
}

func TestRetrievalFullCoverage(t *testing.T) {
	e, err := New(membershipJudge{})
	require.NoError(t, err)

	result, err := e.Evaluate(context.Background(), claims("a", "b"), claims("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.ClaimRecall)
	assert.Equal(t, 1.0, result.ContextPrecision)
}

func TestRetrievalPartialCoverage(t *testing.T) {
	e, err := New(membershipJudge{})
	require.NoError(t, err)

	// Context recovers one of two truth claims and carries two extra claims.
	result, err := e.Evaluate(context.Background(), claims("a", "b"), claims("a", "x", "y"))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.ClaimRecall, 1e-12)
	assert.InDelta(t, 1.0/3.0, result.ContextPrecision, 1e-12)
}

func TestRetrievalEmptySetPolicy(t *testing.T) {
	e, err := New(membershipJudge{})
	require.NoError(t, err)

	tests := []struct {
		name          string
		groundTruth   claim.Set
		contextClaims claim.Set
		wantRecall    float64
		wantPrecision float64
	}{
		{name: "both empty", groundTruth: claims(), contextClaims: claims(), wantRecall: 1, wantPrecision: 1},
		{name: "truth empty", groundTruth: claims(), contextClaims: claims("a"), wantRecall: 0, wantPrecision: 0},
		{name: "context empty", groundTruth: claims("a"), contextClaims: claims(), wantRecall: 0, wantPrecision: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := e.Evaluate(context.Background(), tt.groundTruth, tt.contextClaims)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRecall, result.ClaimRecall)
			assert.Equal(t, tt.wantPrecision, result.ContextPrecision)
		})
	}
}
