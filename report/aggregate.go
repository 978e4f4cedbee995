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
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyReportSet reports an aggregation over zero question reports, whose
// mean is undefined.
var ErrEmptyReportSet = errors.New("empty report set")

// Summarize reduces question reports into the final evaluation report via an
// unweighted field-wise arithmetic mean. Requires at least one input.
func Summarize(questionReports []QuestionReport) (*EvaluationReport, error) {
	if len(questionReports) == 0 {
		return nil, ErrEmptyReportSet
	}
	out := &EvaluationReport{
		RunID:             uuid.NewString(),
		CreationTimestamp: time.Now(),
		QuestionReports:   questionReports,
	}
	for _, qr := range questionReports {
		out.AverageLLMEvaluation.Groundedness += qr.LLMEvaluation.Groundedness
		out.AverageLLMEvaluation.Relevance += qr.LLMEvaluation.Relevance
		out.AverageLLMEvaluation.Coherence += qr.LLMEvaluation.Coherence
		out.AverageLLMEvaluation.Fluency += qr.LLMEvaluation.Fluency
		out.AverageLLMEvaluation.RetrievalScore += qr.LLMEvaluation.RetrievalScore
		out.AverageLLMEvaluation.Similarity += qr.LLMEvaluation.Similarity

		out.AverageOverallClaim.Precision += qr.OverallClaim.Precision
		out.AverageOverallClaim.Recall += qr.OverallClaim.Recall
		out.AverageOverallClaim.F1Score += qr.OverallClaim.F1Score

		out.AverageRetrievalClaim.ClaimRecall += qr.RetrievalClaim.ClaimRecall
		out.AverageRetrievalClaim.ContextPrecision += qr.RetrievalClaim.ContextPrecision

		out.AverageGenerationClaim.Faithfulness += qr.GenerationClaim.Faithfulness
		out.AverageGenerationClaim.RelevantNoiseSensitivity += qr.GenerationClaim.RelevantNoiseSensitivity
		out.AverageGenerationClaim.IrrelevantNoiseSensitivity += qr.GenerationClaim.IrrelevantNoiseSensitivity
		out.AverageGenerationClaim.Hallucination += qr.GenerationClaim.Hallucination
		out.AverageGenerationClaim.SelfKnowledgeScore += qr.GenerationClaim.SelfKnowledgeScore
		out.AverageGenerationClaim.ContextUtilization += qr.GenerationClaim.ContextUtilization
	}
	n := float64(len(questionReports))
	out.AverageLLMEvaluation.Groundedness /= n
	out.AverageLLMEvaluation.Relevance /= n
	out.AverageLLMEvaluation.Coherence /= n
	out.AverageLLMEvaluation.Fluency /= n
	out.AverageLLMEvaluation.RetrievalScore /= n
	out.AverageLLMEvaluation.Similarity /= n

	out.AverageOverallClaim.Precision /= n
	out.AverageOverallClaim.Recall /= n
	out.AverageOverallClaim.F1Score /= n

	out.AverageRetrievalClaim.ClaimRecall /= n
	out.AverageRetrievalClaim.ContextPrecision /= n

	out.AverageGenerationClaim.Faithfulness /= n
	out.AverageGenerationClaim.RelevantNoiseSensitivity /= n
	out.AverageGenerationClaim.IrrelevantNoiseSensitivity /= n
	out.AverageGenerationClaim.Hallucination /= n
	out.AverageGenerationClaim.SelfKnowledgeScore /= n
	out.AverageGenerationClaim.ContextUtilization /= n

	return out, nil
}
