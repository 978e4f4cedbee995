//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package rageval

import (
	"trpc.group/trpc-go/trpc-rag-eval/dataset"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// defaultChunkParallelism bounds concurrent claim extractions per question.
const defaultChunkParallelism = 4

// Option configures the evaluator.
type Option func(*options)

type options struct {
	source              dataset.Source
	reportManager       report.Manager
	chunkParallelism    int
	extractor           ClaimExtractor
	directEvaluator     DirectEvaluator
	overallEvaluator    OverallEvaluator
	retrievalEvaluator  RetrievalEvaluator
	generationEvaluator GenerationEvaluator
}

func newOptions(opt ...Option) *options {
	opts := &options{
		chunkParallelism: defaultChunkParallelism,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithSource sets the dataset source the evaluation iterates over. Required.
func WithSource(source dataset.Source) Option {
	return func(opts *options) {
		opts.source = source
	}
}

// WithReportManager sets a manager the final report is saved to. Optional.
func WithReportManager(manager report.Manager) Option {
	return func(opts *options) {
		opts.reportManager = manager
	}
}

// WithChunkParallelism bounds concurrent claim extractions per question.
// Defaults to 4.
func WithChunkParallelism(parallelism int) Option {
	return func(opts *options) {
		opts.chunkParallelism = parallelism
	}
}

// WithExtractor overrides the default judge-backed claim extractor.
func WithExtractor(extractor ClaimExtractor) Option {
	return func(opts *options) {
		opts.extractor = extractor
	}
}

// WithDirectEvaluator overrides the default direct LLM evaluator.
func WithDirectEvaluator(evaluator DirectEvaluator) Option {
	return func(opts *options) {
		opts.directEvaluator = evaluator
	}
}

// WithOverallEvaluator overrides the default overall claim evaluator.
func WithOverallEvaluator(evaluator OverallEvaluator) Option {
	return func(opts *options) {
		opts.overallEvaluator = evaluator
	}
}

// WithRetrievalEvaluator overrides the default retrieval claim evaluator.
func WithRetrievalEvaluator(evaluator RetrievalEvaluator) Option {
	return func(opts *options) {
		opts.retrievalEvaluator = evaluator
	}
}

// WithGenerationEvaluator overrides the default generation claim evaluator.
func WithGenerationEvaluator(evaluator GenerationEvaluator) Option {
	return func(opts *options) {
		opts.generationEvaluator = evaluator
	}
}
