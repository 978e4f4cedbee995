//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package claim

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

// fakeJudge returns canned claims or a scripted error for ExtractClaims.
type fakeJudge struct {
	claims   []judge.RawClaim
	err      error
	requests []string
}

func (f *fakeJudge) ExtractClaims(_ context.Context, text string) ([]judge.RawClaim, error) {
	f.requests = append(f.requests, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func (f *fakeJudge) JudgeEntailment(context.Context, string, []string) (bool, error) {
	return false, nil
}

func (f *fakeJudge) Score(context.Context, *judge.ScoreRequest) (*judge.ScoreResult, error) {
	return nil, nil
}

func TestExtractorEmptyTextSkipsJudge(t *testing.T) {
	j := &fakeJudge{}
	e, err := NewExtractor(j)
	require.NoError(t, err)

	set, err := e.Extract(context.Background(), "   \n\t")
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.Empty(t, j.requests)
}

func TestExtractorSegmentsAndConverts(t *testing.T) {
	j := &fakeJudge{claims: []judge.RawClaim{
		{Text: "Paris is the capital of France."},
		{Text: "(Paris, capital of, France)", IsTriplet: true},
	}}
	e, err := NewExtractor(j)
	require.NoError(t, err)

	set, err := e.Extract(context.Background(), "Paris is the capital of France. It hosts the Louvre.")
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, Claim{Text: "Paris is the capital of France."}, set[0])
	assert.True(t, set[1].IsTriplet)

	require.Len(t, j.requests, 1)
	assert.Contains(t, j.requests[0], "1. Paris is the capital of France.")
	assert.Contains(t, j.requests[0], "2. It hosts the Louvre.")
}

func TestExtractorParseFailure(t *testing.T) {
	j := &fakeJudge{err: fmt.Errorf("%w: garbage", judge.ErrMalformedOutput)}
	e, err := NewExtractor(j)
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), "some passage")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionParse)
}

func TestExtractorTransportFailure(t *testing.T) {
	j := &fakeJudge{err: fmt.Errorf("%w: boom", judge.ErrUnavailable)}
	e, err := NewExtractor(j)
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), "some passage")
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrUnavailable)
	assert.NotErrorIs(t, err, ErrExtractionParse)
}

func TestSetHelpers(t *testing.T) {
	set := Set{
		{Text: "a"},
		{Text: "b", IsTriplet: true},
		{Text: "c"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, set.Texts())
	assert.Equal(t, Set{{Text: "a"}, {Text: "c"}}, set.FilterTriplets())

	pooled := Pool([]Set{{{Text: "a"}}, {}, {{Text: "b"}, {Text: "c"}}})
	assert.Equal(t, Set{{Text: "a"}, {Text: "b"}, {Text: "c"}}, pooled)
}
