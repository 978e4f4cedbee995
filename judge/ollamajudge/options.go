//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package ollamajudge

import (
	"net/http"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

const (
	defaultModel   = "llama3.1"
	defaultBaseURL = "http://127.0.0.1:11434"
)

type options struct {
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	prompts     judge.Prompts
}

func newOptions(opt ...Option) *options {
	opts := &options{
		model:   defaultModel,
		baseURL: defaultBaseURL,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the local judge backend.
type Option func(*options)

// WithModel sets the judge model name.
func WithModel(model string) Option {
	return func(o *options) {
		if model != "" {
			o.model = model
		}
	}
}

// WithBaseURL points the client at a non-default Ollama server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTemperature sets the sampling temperature. The default of 0 keeps
// judgments repeatable.
func WithTemperature(temperature float64) Option {
	return func(o *options) {
		o.temperature = temperature
	}
}

// WithHTTPClient replaces the HTTP client used to reach the server.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithPrompts overrides the built-in prompt set.
func WithPrompts(prompts judge.Prompts) Option {
	return func(o *options) {
		o.prompts = prompts
	}
}
