//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package promptutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

func TestRendererDefaultsAndOverrides(t *testing.T) {
	r, err := NewRenderer(judge.Prompts{})
	require.NoError(t, err)

	prompt, err := r.ExtractClaims("1. The sky is blue.")
	require.NoError(t, err)
	assert.Contains(t, prompt, "The sky is blue.")
	assert.Contains(t, prompt, "is_triplet")

	prompt, err = r.Entailment("water is wet", []string{"water soaks things", "rain is water"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "1. water soaks things")
	assert.Contains(t, prompt, "2. rain is water")

	prompt, err = r.Score(&judge.ScoreRequest{Question: "why", Context: "ctx", Generated: "gen", GroundTruth: "truth"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "retrieval_score")
	assert.Contains(t, prompt, "truth")

	custom, err := NewRenderer(judge.Prompts{Entailment: "claim={{.Claim}}"})
	require.NoError(t, err)
	prompt, err = custom.Entailment("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "claim=x", prompt)
}

func TestParseClaims(t *testing.T) {
	claims, err := ParseClaims("```json\n[{\"text\": \"a\", \"is_triplet\": false}, {\"text\": \"b\", \"is_triplet\": true}]\n```")
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, judge.RawClaim{Text: "a"}, claims[0])
	assert.True(t, claims[1].IsTriplet)

	claims, err = ParseClaims("here you go: [{\"text\": \"  c  \"}, {\"text\": \"\"}]")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "c", claims[0].Text)

	_, err = ParseClaims("I cannot decompose this passage.")
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrMalformedOutput)

	_, err = ParseClaims("[{\"text\": broken]")
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrMalformedOutput)
}

func TestParseVerdict(t *testing.T) {
	ok, err := ParseVerdict(`{"verdict": "yes"}`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ParseVerdict("The answer is:\n{\"verdict\": \"NO\"}")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ParseVerdict(`{"verdict": "maybe"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrMalformedOutput)

	_, err = ParseVerdict("yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrMalformedOutput)
}

func TestParseScores(t *testing.T) {
	result, err := ParseScores(`{"groundedness": 4, "relevance": 5, "coherence": 3, "fluency": 5, "retrieval_score": 2, "similarity": 4}`)
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.Groundedness)
	assert.Equal(t, 2.0, result.RetrievalScore)

	_, err = ParseScores("no scores here")
	require.Error(t, err)
	assert.ErrorIs(t, err, judge.ErrMalformedOutput)
}
