//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package ollamajudge implements the judge capability on a locally hosted
// Ollama model.
package ollamajudge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/judge/internal/promptutil"
)

// Judge is a judge.Judge backed by a local Ollama server.
type Judge struct {
	client      *api.Client
	model       string
	temperature float64
	renderer    *promptutil.Renderer
}

// New creates a local judge backend.
func New(opt ...Option) (*Judge, error) {
	opts := newOptions(opt...)
	renderer, err := promptutil.NewRenderer(opts.prompts)
	if err != nil {
		return nil, fmt.Errorf("build prompt renderer: %w", err)
	}
	base, err := url.Parse(opts.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", opts.baseURL, err)
	}
	httpClient := opts.httpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Judge{
		client:      api.NewClient(base, httpClient),
		model:       opts.model,
		temperature: opts.temperature,
		renderer:    renderer,
	}, nil
}

// ExtractClaims decomposes text into atomic factual claims.
func (j *Judge) ExtractClaims(ctx context.Context, text string) ([]judge.RawClaim, error) {
	prompt, err := j.renderer.ExtractClaims(text)
	if err != nil {
		return nil, err
	}
	response, err := j.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return promptutil.ParseClaims(response)
}

// JudgeEntailment reports whether the claim is supported by the premises.
func (j *Judge) JudgeEntailment(ctx context.Context, claim string, premises []string) (bool, error) {
	prompt, err := j.renderer.Entailment(claim, premises)
	if err != nil {
		return false, err
	}
	response, err := j.complete(ctx, prompt)
	if err != nil {
		return false, err
	}
	return promptutil.ParseVerdict(response)
}

// Score produces the six holistic scores for one question.
func (j *Judge) Score(ctx context.Context, req *judge.ScoreRequest) (*judge.ScoreResult, error) {
	prompt, err := j.renderer.Score(req)
	if err != nil {
		return nil, err
	}
	response, err := j.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return promptutil.ParseScores(response)
}

// complete runs a single non-streaming chat call and returns the full
// response text.
func (j *Judge) complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: j.model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": j.temperature,
		},
	}
	var sb strings.Builder
	err := j.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", normalizeError(err))
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: empty completion", judge.ErrMalformedOutput)
	}
	return sb.String(), nil
}

// normalizeError maps Ollama status errors to the judge transport error so
// the retry predicate sees the HTTP code.
func normalizeError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %v", &judge.StatusError{Code: statusErr.StatusCode}, err)
	}
	return err
}

var _ judge.Judge = (*Judge)(nil)
