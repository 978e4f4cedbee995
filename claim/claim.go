//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package claim provides the atomic claim model and the judge-backed claim
// extractor.
package claim

// Claim is one atomic factual statement extracted from a passage of text.
// Immutable once created.
type Claim struct {
	// Text is the claim statement.
	Text string `json:"text"`
	// IsTriplet marks a bare (subject, predicate, object) claim. Triplet
	// claims are an extractor artifact and excluded from matching.
	IsTriplet bool `json:"is_triplet"`
}

// Set is an unordered collection of claims derived from one source text.
// The extractor's output is trusted as-is; the core does not deduplicate.
type Set []Claim

// Texts returns the claim statements in order.
func (s Set) Texts() []string {
	texts := make([]string, len(s))
	for i, c := range s {
		texts[i] = c.Text
	}
	return texts
}

// FilterTriplets returns the claims usable by the matching algorithms.
func (s Set) FilterTriplets() Set {
	out := make(Set, 0, len(s))
	for _, c := range s {
		if c.IsTriplet {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Pool flattens multiple claim sets into one, preserving set order.
func Pool(sets []Set) Set {
	size := 0
	for _, s := range sets {
		size += len(s)
	}
	pooled := make(Set, 0, size)
	for _, s := range sets {
		pooled = append(pooled, s...)
	}
	return pooled
}
