//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package openaijudge

import "trpc.group/trpc-go/trpc-rag-eval/judge"

const defaultModel = "gpt-4o-mini"

type options struct {
	model       string
	apiKey      string
	baseURL     string
	temperature float64
	prompts     judge.Prompts
}

func newOptions(opt ...Option) *options {
	opts := &options{
		model: defaultModel,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the hosted judge backend.
type Option func(*options)

// WithModel sets the judge model name.
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

// WithAPIKey sets the API key. When empty, the client falls back to its
// environment configuration.
func WithAPIKey(apiKey string) Option {
	return func(o *options) {
		o.apiKey = apiKey
	}
}

// WithBaseURL points the client at a non-default endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTemperature sets the sampling temperature. The default of 0 keeps
// judgments repeatable.
func WithTemperature(temperature float64) Option {
	return func(o *options) {
		o.temperature = temperature
	}
}

// WithPrompts overrides the built-in prompt set.
func WithPrompts(prompts judge.Prompts) Option {
	return func(o *options) {
		o.prompts = prompts
	}
}
