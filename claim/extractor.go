//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

// ErrExtractionParse reports that the judge's decomposition of a passage
// could not be parsed into claims. A single unparseable extraction aborts
// the question being evaluated.
var ErrExtractionParse = errors.New("claim extraction parse failure")

// Extractor turns a text passage into a claim set via the judge.
type Extractor struct {
	judge judge.Judge
}

// NewExtractor creates a claim extractor on the given judge.
func NewExtractor(j judge.Judge) (*Extractor, error) {
	if j == nil {
		return nil, errors.New("judge is nil")
	}
	return &Extractor{judge: j}, nil
}

// Extract decomposes text into atomic claims. Empty or whitespace-only text
// yields an empty set without a judge call.
func (e *Extractor) Extract(ctx context.Context, text string) (Set, error) {
	if strings.TrimSpace(text) == "" {
		return Set{}, nil
	}
	passage := text
	if sents, err := segmentSentences(text); err == nil && len(sents) > 0 {
		passage = numberSentences(sents)
	}
	raw, err := e.judge.ExtractClaims(ctx, passage)
	if err != nil {
		if errors.Is(err, judge.ErrMalformedOutput) {
			return nil, fmt.Errorf("%w: %w", ErrExtractionParse, err)
		}
		return nil, fmt.Errorf("extract claims: %w", err)
	}
	set := make(Set, 0, len(raw))
	for _, c := range raw {
		set = append(set, Claim{Text: c.Text, IsTriplet: c.IsTriplet})
	}
	return set, nil
}
