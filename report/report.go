//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package report defines the evaluation report shapes and their aggregation.
package report

import "time"

// LLMEvaluationReport holds the six holistic judge scores for one question.
// Scores lie in the judge-defined scale (1-5 with the default prompts).
type LLMEvaluationReport struct {
	Groundedness   float64 `json:"groundedness"`
	Relevance      float64 `json:"relevance"`
	Coherence      float64 `json:"coherence"`
	Fluency        float64 `json:"fluency"`
	RetrievalScore float64 `json:"retrieval_score"`
	Similarity     float64 `json:"similarity"`
}

// OverallClaimReport compares generated-answer claims against ground-truth
// claims. All fields lie in [0,1].
type OverallClaimReport struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
}

// RetrievalClaimReport measures how well the retrieved context covers the
// ground truth. All fields lie in [0,1].
type RetrievalClaimReport struct {
	ClaimRecall      float64 `json:"claim_recall"`
	ContextPrecision float64 `json:"context_precision"`
}

// GenerationClaimReport measures how the generator used (and misused) the
// retrieved context. All fields lie in [0,1].
type GenerationClaimReport struct {
	Faithfulness               float64 `json:"faithfulness"`
	RelevantNoiseSensitivity   float64 `json:"relevant_noise_sensitivity"`
	IrrelevantNoiseSensitivity float64 `json:"irrelevant_noise_sensitivity"`
	Hallucination              float64 `json:"hallucination"`
	SelfKnowledgeScore         float64 `json:"self_knowledge_score"`
	ContextUtilization         float64 `json:"context_utilization"`
}

// QuestionReport owns the four per-question reports. Immutable after
// construction.
type QuestionReport struct {
	Question        string                `json:"question"`
	LLMEvaluation   LLMEvaluationReport   `json:"llm_evaluation"`
	OverallClaim    OverallClaimReport    `json:"overall_claim"`
	RetrievalClaim  RetrievalClaimReport  `json:"retrieval_claim"`
	GenerationClaim GenerationClaimReport `json:"generation_claim"`
}

// EvaluationReport is the terminal artifact of one evaluation run: every
// QuestionReport in dataset order plus one field-wise averaged instance of
// each report type.
type EvaluationReport struct {
	RunID                  string                `json:"run_id"`
	CreationTimestamp      time.Time             `json:"creation_timestamp"`
	QuestionReports        []QuestionReport      `json:"question_reports"`
	AverageLLMEvaluation   LLMEvaluationReport   `json:"average_llm_evaluation"`
	AverageOverallClaim    OverallClaimReport    `json:"average_overall_claim"`
	AverageRetrievalClaim  RetrievalClaimReport  `json:"average_retrieval_claim"`
	AverageGenerationClaim GenerationClaimReport `json:"average_generation_claim"`
}
