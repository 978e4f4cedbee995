//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package rageval evaluates retrieval-augmented generation pipelines with a
// claim-based metric suite judged by an LLM.
package rageval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-rag-eval/claim"
	"trpc.group/trpc-go/trpc-rag-eval/dataset"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator/direct"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator/generation"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator/overall"
	"trpc.group/trpc-go/trpc-rag-eval/evaluator/retrieval"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/log"
	"trpc.group/trpc-go/trpc-rag-eval/pipeline"
	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// ErrPipelineFailure reports that the pipeline under evaluation failed to
// answer a question. A pipeline failure aborts the whole run.
var ErrPipelineFailure = errors.New("pipeline failure")

// ClaimExtractor decomposes a text passage into atomic claims.
type ClaimExtractor interface {
	Extract(ctx context.Context, text string) (claim.Set, error)
}

// DirectEvaluator scores a question holistically without claim extraction.
type DirectEvaluator interface {
	Evaluate(ctx context.Context, question, joinedContext, generated, groundTruth string) (*report.LLMEvaluationReport, error)
}

// OverallEvaluator compares generated claims against ground-truth claims.
type OverallEvaluator interface {
	Evaluate(ctx context.Context, generated, groundTruth claim.Set) (*report.OverallClaimReport, error)
}

// RetrievalEvaluator measures ground-truth coverage of the retrieved context.
type RetrievalEvaluator interface {
	Evaluate(ctx context.Context, groundTruth, contextClaims claim.Set) (*report.RetrievalClaimReport, error)
}

// GenerationEvaluator measures how the generator used the retrieved context.
type GenerationEvaluator interface {
	Evaluate(ctx context.Context, input *generation.Input) (*report.GenerationClaimReport, error)
}

// RAGEvaluator runs the full metric suite over a dataset of questions.
type RAGEvaluator struct {
	pipeline            pipeline.Pipeline
	source              dataset.Source
	reportManager       report.Manager
	extractor           ClaimExtractor
	directEvaluator     DirectEvaluator
	overallEvaluator    OverallEvaluator
	retrievalEvaluator  RetrievalEvaluator
	generationEvaluator GenerationEvaluator
	extractionPool      *ants.PoolWithFunc
}

// New creates a RAG evaluator for the given pipeline and judge. A dataset
// source must be provided via WithSource.
func New(p pipeline.Pipeline, j judge.Judge, opt ...Option) (*RAGEvaluator, error) {
	if p == nil {
		return nil, errors.New("pipeline is nil")
	}
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	opts := newOptions(opt...)
	if opts.source == nil {
		return nil, errors.New("dataset source is nil")
	}
	e := &RAGEvaluator{
		pipeline:            p,
		source:              opts.source,
		reportManager:       opts.reportManager,
		extractor:           opts.extractor,
		directEvaluator:     opts.directEvaluator,
		overallEvaluator:    opts.overallEvaluator,
		retrievalEvaluator:  opts.retrievalEvaluator,
		generationEvaluator: opts.generationEvaluator,
	}
	var err error
	if e.extractor == nil {
		if e.extractor, err = claim.NewExtractor(j); err != nil {
			return nil, fmt.Errorf("create claim extractor: %w", err)
		}
	}
	if e.directEvaluator == nil {
		if e.directEvaluator, err = direct.New(j); err != nil {
			return nil, fmt.Errorf("create direct evaluator: %w", err)
		}
	}
	if e.overallEvaluator == nil {
		if e.overallEvaluator, err = overall.New(j); err != nil {
			return nil, fmt.Errorf("create overall evaluator: %w", err)
		}
	}
	if e.retrievalEvaluator == nil {
		if e.retrievalEvaluator, err = retrieval.New(j); err != nil {
			return nil, fmt.Errorf("create retrieval evaluator: %w", err)
		}
	}
	if e.generationEvaluator == nil {
		if e.generationEvaluator, err = generation.New(j); err != nil {
			return nil, fmt.Errorf("create generation evaluator: %w", err)
		}
	}
	if e.extractionPool, err = createExtractionPool(opts.chunkParallelism); err != nil {
		return nil, fmt.Errorf("create claim extraction pool: %w", err)
	}
	return e, nil
}

// Close releases the evaluator's owned resources.
func (e *RAGEvaluator) Close() error {
	if e.extractionPool != nil {
		e.extractionPool.Release()
	}
	return nil
}

// Evaluate runs the metric suite over every dataset record, strictly in
// dataset order, and returns the aggregated report. The report is saved via
// the report manager when one is configured.
func (e *RAGEvaluator) Evaluate(ctx context.Context) (*report.EvaluationReport, error) {
	var questionReports []report.QuestionReport
	for record, err := range e.source.Records(ctx) {
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		questionReport, err := e.evaluateRecord(ctx, record)
		if err != nil {
			return nil, err
		}
		questionReports = append(questionReports, *questionReport)
		log.Debugf("evaluated question %d: %q", len(questionReports), record.Question)
	}
	summary, err := report.Summarize(questionReports)
	if err != nil {
		return nil, fmt.Errorf("summarize question reports: %w", err)
	}
	if e.reportManager != nil {
		if _, err := e.reportManager.Save(ctx, summary); err != nil {
			return nil, fmt.Errorf("save evaluation report: %w", err)
		}
	}
	log.Infof("evaluation run %s finished: %d questions", summary.RunID, len(questionReports))
	return summary, nil
}

func (e *RAGEvaluator) evaluateRecord(ctx context.Context, record dataset.Record) (*report.QuestionReport, error) {
	generated, chunks, err := e.pipeline.Generate(ctx, record.Question)
	if err != nil {
		return nil, fmt.Errorf("%w: question %q: %w", ErrPipelineFailure, record.Question, err)
	}
	perChunk, generatedClaims, truthClaims, err := e.extractAll(ctx, chunks, generated, record.Answer)
	if err != nil {
		return nil, fmt.Errorf("extract claims for question %q: %w", record.Question, err)
	}
	pooled := claim.Pool(perChunk)
	joinedContext := strings.Join(pipeline.Texts(chunks), "\n")

	var (
		llmReport        *report.LLMEvaluationReport
		overallReport    *report.OverallClaimReport
		retrievalReport  *report.RetrievalClaimReport
		generationReport *report.GenerationClaimReport
	)
	errs := make([]error, 4)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		llmReport, errs[0] = e.directEvaluator.Evaluate(ctx, record.Question, joinedContext, generated, record.Answer)
	}()
	go func() {
		defer wg.Done()
		overallReport, errs[1] = e.overallEvaluator.Evaluate(ctx, generatedClaims, truthClaims)
	}()
	go func() {
		defer wg.Done()
		retrievalReport, errs[2] = e.retrievalEvaluator.Evaluate(ctx, truthClaims, pooled)
	}()
	go func() {
		defer wg.Done()
		generationReport, errs[3] = e.generationEvaluator.Evaluate(ctx, &generation.Input{
			Question:        record.Question,
			PooledContext:   pooled,
			PerChunkContext: perChunk,
			Generated:       generatedClaims,
			GroundTruth:     truthClaims,
		})
	}()
	wg.Wait()
	var combined *multierror.Error
	for _, err := range errs {
		combined = multierror.Append(combined, err)
	}
	if err := combined.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("evaluate question %q: %w", record.Question, err)
	}
	return &report.QuestionReport{
		Question:        record.Question,
		LLMEvaluation:   *llmReport,
		OverallClaim:    *overallReport,
		RetrievalClaim:  *retrievalReport,
		GenerationClaim: *generationReport,
	}, nil
}

// extractAll decomposes every context chunk plus the generated and
// ground-truth answers into claims on the extraction pool. Results keep
// chunk order; the answers occupy the two trailing slots.
func (e *RAGEvaluator) extractAll(
	ctx context.Context,
	chunks []pipeline.ContextChunk,
	generated, groundTruth string,
) ([]claim.Set, claim.Set, claim.Set, error) {
	texts := append(pipeline.Texts(chunks), generated, groundTruth)
	results := make([]claim.Set, len(texts))
	errs := make([]error, len(texts))
	extractCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		param, ok := extractionParamPool.Get().(*extractionParam)
		if !ok {
			panic("claim extraction param pool type error")
		}
		param.idx = i
		param.ctx = extractCtx
		param.text = text
		param.extractor = e.extractor
		param.results = results
		param.errs = errs
		param.cancel = cancel
		param.wg = &wg
		if err := e.extractionPool.Invoke(param); err != nil {
			errs[i] = fmt.Errorf("submit extraction task: %w", err)
			param.reset()
			extractionParamPool.Put(param)
			wg.Done()
			cancel()
		}
	}
	wg.Wait()
	var combined *multierror.Error
	for _, err := range errs {
		combined = multierror.Append(combined, err)
	}
	if err := combined.ErrorOrNil(); err != nil {
		return nil, nil, nil, err
	}
	// Triplet claims are an extractor artifact and take no part in matching.
	for i, set := range results {
		results[i] = set.FilterTriplets()
	}
	n := len(chunks)
	return results[:n], results[n], results[n+1], nil
}
