//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package promptutil renders judge prompts and parses judge responses. It is
// shared by every judge backend so that hosted and local models speak the
// same wire contract.
package promptutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

// defaultExtractClaimsPrompt asks the judge to decompose a passage into
// atomic claims, flagging subject-predicate-object triplets so callers can
// drop them.
const defaultExtractClaimsPrompt = `You are an expert fact checker. Decompose the passage below into atomic factual claims.
Each claim must be a single self-contained statement that can be verified on its own.
If a claim is best expressed as a bare (subject, predicate, object) triplet rather than a full sentence, set "is_triplet" to true.

Passage (sentences are numbered for your convenience):
{{.Text}}

Answer with a JSON array alone, following this structure:
[
  {"text": "<claim>", "is_triplet": false}
]
`

// defaultEntailmentPrompt asks for a yes/no support verdict of one claim
// against a premise set.
const defaultEntailmentPrompt = `You are an expert rater judging textual entailment.
Decide whether the claim below is supported by the premises. A claim is supported when its truth follows from the premises taken together; minor rewording is acceptable, added facts are not.

Claim:
{{.Claim}}

Premises:
{{.Premises}}

Answer with a JSON object alone, following this structure:
{"verdict": "yes"}
Use "yes" if the claim is supported, "no" otherwise.
`

// defaultScorePrompt asks for the six holistic scores on a 1-5 scale.
const defaultScorePrompt = `You are an expert rater for retrieval-augmented generation systems.
Rate the generated answer on each dimension below with an integer from 1 (worst) to 5 (best).

Question:
{{.Question}}

Retrieved context:
{{.Context}}

Generated answer:
{{.Generated}}

Reference answer:
{{.GroundTruth}}

Dimensions:
- groundedness: the answer only states what the context supports.
- relevance: the answer addresses the question asked.
- coherence: the answer reads as one well-organized whole.
- fluency: the answer is grammatical and natural.
- retrieval_score: the retrieved context is useful for answering the question.
- similarity: the answer agrees with the reference answer.

Answer with a JSON object alone, following this structure:
{"groundedness": 5, "relevance": 5, "coherence": 5, "fluency": 5, "retrieval_score": 5, "similarity": 5}
`

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() judge.Prompts {
	return judge.Prompts{
		ExtractClaims: defaultExtractClaimsPrompt,
		Entailment:    defaultEntailmentPrompt,
		Score:         defaultScorePrompt,
	}
}

// Renderer renders the three judge prompts from parsed templates.
type Renderer struct {
	extract    *template.Template
	entailment *template.Template
	score      *template.Template
}

// NewRenderer parses the prompt set into templates. Empty prompt fields fall
// back to the built-in defaults.
func NewRenderer(prompts judge.Prompts) (*Renderer, error) {
	defaults := DefaultPrompts()
	if prompts.ExtractClaims == "" {
		prompts.ExtractClaims = defaults.ExtractClaims
	}
	if prompts.Entailment == "" {
		prompts.Entailment = defaults.Entailment
	}
	if prompts.Score == "" {
		prompts.Score = defaults.Score
	}
	extract, err := template.New("extract_claims").Parse(prompts.ExtractClaims)
	if err != nil {
		return nil, fmt.Errorf("parse extract claims prompt: %w", err)
	}
	entailment, err := template.New("entailment").Parse(prompts.Entailment)
	if err != nil {
		return nil, fmt.Errorf("parse entailment prompt: %w", err)
	}
	score, err := template.New("score").Parse(prompts.Score)
	if err != nil {
		return nil, fmt.Errorf("parse score prompt: %w", err)
	}
	return &Renderer{extract: extract, entailment: entailment, score: score}, nil
}

// ExtractClaims renders the claim decomposition prompt.
func (r *Renderer) ExtractClaims(text string) (string, error) {
	return render(r.extract, struct{ Text string }{Text: text})
}

// Entailment renders the entailment prompt. Premises are presented as a
// numbered list.
func (r *Renderer) Entailment(claim string, premises []string) (string, error) {
	var sb strings.Builder
	for i, premise := range premises {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, premise)
	}
	return render(r.entailment, struct{ Claim, Premises string }{Claim: claim, Premises: sb.String()})
}

// Score renders the holistic scoring prompt.
func (r *Renderer) Score(req *judge.ScoreRequest) (string, error) {
	return render(r.score, struct{ Question, Context, Generated, GroundTruth string }{
		Question:    req.Question,
		Context:     req.Context,
		Generated:   req.Generated,
		GroundTruth: req.GroundTruth,
	})
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// ParseClaims parses the judge's claim decomposition response.
func ParseClaims(response string) ([]judge.RawClaim, error) {
	payload, ok := jsonPayload(response, '[', ']')
	if !ok {
		return nil, fmt.Errorf("%w: no claim list in %q", judge.ErrMalformedOutput, truncate(response))
	}
	var claims []judge.RawClaim
	if err := json.Unmarshal([]byte(payload), &claims); err != nil {
		return nil, fmt.Errorf("%w: decode claim list: %v", judge.ErrMalformedOutput, err)
	}
	out := make([]judge.RawClaim, 0, len(claims))
	for _, c := range claims {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		out = append(out, judge.RawClaim{Text: strings.TrimSpace(c.Text), IsTriplet: c.IsTriplet})
	}
	return out, nil
}

// verdictResponse mirrors the entailment answer structure.
type verdictResponse struct {
	Verdict string `json:"verdict"`
}

// ParseVerdict parses the judge's yes/no entailment verdict.
func ParseVerdict(response string) (bool, error) {
	payload, ok := jsonPayload(response, '{', '}')
	if !ok {
		return false, fmt.Errorf("%w: no verdict in %q", judge.ErrMalformedOutput, truncate(response))
	}
	var verdict verdictResponse
	if err := json.Unmarshal([]byte(payload), &verdict); err != nil {
		return false, fmt.Errorf("%w: decode verdict: %v", judge.ErrMalformedOutput, err)
	}
	switch strings.ToLower(strings.TrimSpace(verdict.Verdict)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: verdict %q is neither yes nor no", judge.ErrMalformedOutput, verdict.Verdict)
	}
}

// ParseScores parses the judge's six holistic scores.
func ParseScores(response string) (*judge.ScoreResult, error) {
	payload, ok := jsonPayload(response, '{', '}')
	if !ok {
		return nil, fmt.Errorf("%w: no scores in %q", judge.ErrMalformedOutput, truncate(response))
	}
	var result judge.ScoreResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("%w: decode scores: %v", judge.ErrMalformedOutput, err)
	}
	return &result, nil
}

// jsonPayload cuts the outermost JSON value delimited by open/close out of a
// possibly fenced or chatty model response.
func jsonPayload(response string, open, close byte) (string, bool) {
	start := strings.IndexByte(response, open)
	end := strings.LastIndexByte(response, close)
	if start < 0 || end <= start {
		return "", false
	}
	return response[start : end+1], true
}

func truncate(s string) string {
	const limit = 120
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
