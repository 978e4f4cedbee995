//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package generation computes the generator-side claim metrics:
// faithfulness, noise sensitivity, hallucination, self-knowledge and context
// utilization. It is the only evaluator that needs claims grouped per
// context chunk, because noise sensitivity is defined against individual
// chunks rather than their union.
package generation

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// Evaluator measures how the generator used the retrieved context.
type Evaluator struct {
	judge judge.Judge
}

// New creates a generation claim evaluator.
func New(j judge.Judge) (*Evaluator, error) {
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	return &Evaluator{judge: j}, nil
}

// Input carries the claim sets one generation evaluation works over.
type Input struct {
	// Question is the original user question, used to judge chunk relevance.
	Question string
	// PooledContext holds the claims of every chunk flattened in chunk order.
	PooledContext claim.Set
	// PerChunkContext holds each chunk's claims, in pipeline-returned order.
	PerChunkContext []claim.Set
	// Generated holds the generated-answer claims.
	Generated claim.Set
	// GroundTruth holds the ground-truth-answer claims.
	GroundTruth claim.Set
}

// Evaluate computes the six generation metrics. Each generated claim is
// judged once against the pooled context and once against the ground truth;
// those verdicts are shared across all ratios.
func (e *Evaluator) Evaluate(ctx context.Context, input *Input) (*report.GenerationClaimReport, error) {
	if input == nil {
		return nil, errors.New("input is nil")
	}
	inContext, err := evaluator.EntailedFlags(ctx, e.judge, input.Generated, input.PooledContext.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge generated claims against context: %w", err)
	}
	inTruth, err := evaluator.EntailedFlags(ctx, e.judge, input.Generated, input.GroundTruth.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge generated claims against ground truth: %w", err)
	}

	var faithful, hallucinated, selfKnown int
	for i := range input.Generated {
		switch {
		case inContext[i]:
			faithful++
		case inTruth[i]:
			selfKnown++
		default:
			hallucinated++
		}
	}

	relevantNoise, irrelevantNoise, err := e.noiseSensitivity(ctx, input, inTruth)
	if err != nil {
		return nil, err
	}

	utilized, err := evaluator.CountEntailed(ctx, e.judge, input.PooledContext, input.Generated.Texts())
	if err != nil {
		return nil, fmt.Errorf("judge context claims against generated: %w", err)
	}

	generatedCount := len(input.Generated)
	premiseCount := len(input.PooledContext) + len(input.GroundTruth)
	return &report.GenerationClaimReport{
		Faithfulness:               evaluator.EdgeRatio(faithful, generatedCount, len(input.PooledContext)),
		RelevantNoiseSensitivity:   evaluator.EdgeRatio(relevantNoise, generatedCount, premiseCount),
		IrrelevantNoiseSensitivity: evaluator.EdgeRatio(irrelevantNoise, generatedCount, premiseCount),
		Hallucination:              evaluator.EdgeRatio(hallucinated, generatedCount, premiseCount),
		SelfKnowledgeScore:         evaluator.EdgeRatio(selfKnown, generatedCount, premiseCount),
		ContextUtilization:         evaluator.EdgeRatio(utilized, len(input.PooledContext), generatedCount),
	}, nil
}

// noiseSensitivity counts incorrect generated claims traced back to a
// relevant or an irrelevant context chunk. A claim traced to several chunks
// counts as relevant noise when any entailing chunk is relevant to the
// question, and as irrelevant noise otherwise. Chunk relevance verdicts are
// memoized so each chunk is judged at most once.
func (e *Evaluator) noiseSensitivity(ctx context.Context, input *Input, inTruth []bool) (int, int, error) {
	relevance := make(map[int]bool, len(input.PerChunkContext))
	chunkRelevant := func(idx int) (bool, error) {
		if verdict, ok := relevance[idx]; ok {
			return verdict, nil
		}
		verdict, err := e.judge.JudgeEntailment(ctx, input.Question, input.PerChunkContext[idx].Texts())
		if err != nil {
			return false, fmt.Errorf("judge relevance of chunk %d: %w", idx, err)
		}
		relevance[idx] = verdict
		return verdict, nil
	}

	var relevantNoise, irrelevantNoise int
	for i, c := range input.Generated {
		if inTruth[i] {
			continue
		}
		tracedRelevant := false
		traced := false
		for idx, chunkClaims := range input.PerChunkContext {
			if len(chunkClaims) == 0 {
				continue
			}
			entailed, err := e.judge.JudgeEntailment(ctx, c.Text, chunkClaims.Texts())
			if err != nil {
				return 0, 0, fmt.Errorf("judge claim against chunk %d: %w", idx, err)
			}
			if !entailed {
				continue
			}
			traced = true
			verdict, err := chunkRelevant(idx)
			if err != nil {
				return 0, 0, err
			}
			if verdict {
				tracedRelevant = true
				break
			}
		}
		switch {
		case tracedRelevant:
			relevantNoise++
		case traced:
			irrelevantNoise++
		}
	}
	return relevantNoise, irrelevantNoise, nil
}
