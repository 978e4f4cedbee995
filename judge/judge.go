//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package judge defines the text-judgment capability used by all evaluators
// and the resilience policy that wraps calls to it.
package judge

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable reports that the judge could not be reached: either every
// retry attempt was exhausted or the transport failed in a non-retryable way.
var ErrUnavailable = errors.New("judge unavailable")

// ErrMalformedOutput reports that the judge responded, but its output could
// not be parsed into the structure the operation requires. It is never retried.
var ErrMalformedOutput = errors.New("malformed judge output")

// RawClaim is one structured claim parsed from the judge's decomposition of a
// text passage. Triplet claims are kept so that callers can filter them out.
type RawClaim struct {
	Text      string `json:"text"`
	IsTriplet bool   `json:"is_triplet"`
}

// ScoreRequest carries the inputs for a direct holistic scoring call.
type ScoreRequest struct {
	Question    string
	Context     string
	Generated   string
	GroundTruth string
}

// ScoreResult holds the six holistic scores produced by one scoring call.
// Each score lies in the judge-defined scale (1-5 with the default prompts).
type ScoreResult struct {
	Groundedness   float64 `json:"groundedness"`
	Relevance      float64 `json:"relevance"`
	Coherence      float64 `json:"coherence"`
	Fluency        float64 `json:"fluency"`
	RetrievalScore float64 `json:"retrieval_score"`
	Similarity     float64 `json:"similarity"`
}

// Judge is the external text-judgment capability. All operations block on
// remote calls and honor ctx cancellation. Implementations are safe for
// concurrent use.
type Judge interface {
	// ExtractClaims decomposes text into atomic factual claims.
	ExtractClaims(ctx context.Context, text string) ([]RawClaim, error)
	// JudgeEntailment reports whether the claim is supported by the premises.
	JudgeEntailment(ctx context.Context, claim string, premises []string) (bool, error)
	// Score produces the six holistic scores for one question.
	Score(ctx context.Context, req *ScoreRequest) (*ScoreResult, error)
}

// StatusError is a transport failure carrying the HTTP status reported by the
// judge backend. The retry predicate matches on Code instead of sniffing
// error strings.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("judge transport status %d", e.Code)
}

// Prompts holds the instruction text for the three judge operations. Prompt
// content is configuration data: backends render these templates and callers
// may swap in their own wording without touching code.
type Prompts struct {
	// ExtractClaims receives {{.Text}}.
	ExtractClaims string
	// Entailment receives {{.Claim}} and {{.Premises}}.
	Entailment string
	// Score receives {{.Question}}, {{.Context}}, {{.Generated}} and {{.GroundTruth}}.
	Score string
}
