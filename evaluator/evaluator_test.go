//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

// membershipJudge entails a claim iff its text appears verbatim in the
// premises.
type membershipJudge struct {
	calls int
}

func (m *membershipJudge) ExtractClaims(context.Context, string) ([]judge.RawClaim, error) {
	return nil, nil
}

func (m *membershipJudge) JudgeEntailment(_ context.Context, c string, premises []string) (bool, error) {
	m.calls++
	return slices.Contains(premises, c), nil
}

func (m *membershipJudge) Score(context.Context, *judge.ScoreRequest) (*judge.ScoreResult, error) {
	return nil, nil
}

func TestEdgeRatio(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		denominator int
		other       int
		want        float64
	}{
		{name: "both empty", count: 0, denominator: 0, other: 0, want: 1.0},
		{name: "denominator empty only", count: 0, denominator: 0, other: 3, want: 0.0},
		{name: "full support", count: 4, denominator: 4, other: 2, want: 1.0},
		{name: "half support", count: 2, denominator: 4, other: 0, want: 0.5},
		{name: "no support", count: 0, denominator: 5, other: 0, want: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EdgeRatio(tt.count, tt.denominator, tt.other))
		})
	}
}

func TestEntailedFlagsEmptyPremisesSkipsJudge(t *testing.T) {
	j := &membershipJudge{}
	flags, err := EntailedFlags(context.Background(), j, claim.Set{{Text: "a"}, {Text: "b"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, flags)
	assert.Zero(t, j.calls)
}

func TestCountEntailed(t *testing.T) {
	j := &membershipJudge{}
	claims := claim.Set{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	count, err := CountEntailed(context.Background(), j, claims, []string{"a", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 3, j.calls)
}
