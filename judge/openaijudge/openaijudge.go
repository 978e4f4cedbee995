//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package openaijudge implements the judge capability on an OpenAI-protocol
// hosted model. Any endpoint speaking the chat completion protocol works via
// WithBaseURL.
package openaijudge

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/judge/internal/promptutil"
)

// Judge is a judge.Judge backed by a hosted OpenAI-protocol model.
type Judge struct {
	client      openai.Client
	model       string
	temperature float64
	renderer    *promptutil.Renderer
}

// New creates a hosted judge backend.
func New(opt ...Option) (*Judge, error) {
	opts := newOptions(opt...)
	renderer, err := promptutil.NewRenderer(opts.prompts)
	if err != nil {
		return nil, fmt.Errorf("build prompt renderer: %w", err)
	}
	var clientOpts []openaiopt.RequestOption
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.baseURL))
	}
	return &Judge{
		client:      openai.NewClient(clientOpts...),
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

// complete runs a single non-streaming chat completion and returns the text
// of the first choice.
func (j *Judge) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := j.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: j.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(j.temperature),
	})
	if err != nil {
		// The *openai.Error stays in the chain so the retry predicate can
		// read its status code.
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", judge.ErrMalformedOutput)
	}
	return resp.Choices[0].Message.Content, nil
}

var _ judge.Judge = (*Judge)(nil)
