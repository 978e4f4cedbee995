//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestSummarizeEmptySet(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyReportSet)

	_, err = Summarize([]QuestionReport{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyReportSet)
}

func TestSummarizeSingleReportIsIdentity(t *testing.T) {
	qr := QuestionReport{
		Question:       "q1",
		LLMEvaluation:  LLMEvaluationReport{Groundedness: 4, Relevance: 3, Coherence: 5, Fluency: 2, RetrievalScore: 1, Similarity: 4},
		OverallClaim:   OverallClaimReport{Precision: 0.5, Recall: 0.25, F1Score: 1.0 / 3.0},
		RetrievalClaim: RetrievalClaimReport{ClaimRecall: 0.75, ContextPrecision: 0.6},
		GenerationClaim: GenerationClaimReport{
			Faithfulness:               0.8,
			RelevantNoiseSensitivity:   0.1,
			IrrelevantNoiseSensitivity: 0.2,
			Hallucination:              0.05,
			SelfKnowledgeScore:         0.15,
			ContextUtilization:         0.9,
		},
	}
	out, err := Summarize([]QuestionReport{qr})
	require.NoError(t, err)
	assert.NotEmpty(t, out.RunID)
	assert.False(t, out.CreationTimestamp.IsZero())
	require.Len(t, out.QuestionReports, 1)
	assert.Equal(t, qr.LLMEvaluation, out.AverageLLMEvaluation)
	assert.Equal(t, qr.OverallClaim, out.AverageOverallClaim)
	assert.Equal(t, qr.RetrievalClaim, out.AverageRetrievalClaim)
	assert.Equal(t, qr.GenerationClaim, out.AverageGenerationClaim)
}

func TestSummarizeUnweightedMean(t *testing.T) {
	reports := []QuestionReport{
		{
			OverallClaim:    OverallClaimReport{Precision: 1.0, Recall: 0.5, F1Score: 2.0 / 3.0},
			RetrievalClaim:  RetrievalClaimReport{ClaimRecall: 1.0, ContextPrecision: 0.0},
			GenerationClaim: GenerationClaimReport{Faithfulness: 1.0, Hallucination: 0.0},
			LLMEvaluation:   LLMEvaluationReport{Groundedness: 5, Similarity: 3},
		},
		{
			OverallClaim:    OverallClaimReport{Precision: 0.0, Recall: 1.0, F1Score: 0.0},
			RetrievalClaim:  RetrievalClaimReport{ClaimRecall: 0.0, ContextPrecision: 1.0},
			GenerationClaim: GenerationClaimReport{Faithfulness: 0.5, Hallucination: 0.25},
			LLMEvaluation:   LLMEvaluationReport{Groundedness: 3, Similarity: 5},
		},
		{
			OverallClaim:    OverallClaimReport{Precision: 0.5, Recall: 0.75, F1Score: 0.6},
			RetrievalClaim:  RetrievalClaimReport{ClaimRecall: 0.5, ContextPrecision: 0.5},
			GenerationClaim: GenerationClaimReport{Faithfulness: 0.75, Hallucination: 0.5},
			LLMEvaluation:   LLMEvaluationReport{Groundedness: 1, Similarity: 1},
		},
	}
	out, err := Summarize(reports)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out.AverageOverallClaim.Precision, tolerance)
	assert.InDelta(t, 0.75, out.AverageOverallClaim.Recall, tolerance)
	assert.InDelta(t, (2.0/3.0+0.0+0.6)/3.0, out.AverageOverallClaim.F1Score, tolerance)
	assert.InDelta(t, 0.5, out.AverageRetrievalClaim.ClaimRecall, tolerance)
	assert.InDelta(t, 0.5, out.AverageRetrievalClaim.ContextPrecision, tolerance)
	assert.InDelta(t, 0.75, out.AverageGenerationClaim.Faithfulness, tolerance)
	assert.InDelta(t, 0.25, out.AverageGenerationClaim.Hallucination, tolerance)
	assert.InDelta(t, 3.0, out.AverageLLMEvaluation.Groundedness, tolerance)
	assert.InDelta(t, 3.0, out.AverageLLMEvaluation.Similarity, tolerance)
	// Question order is preserved.
	require.Len(t, out.QuestionReports, 3)
}
