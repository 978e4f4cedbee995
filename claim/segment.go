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
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// sentenceTokenizerOnce ensures the Punkt model is loaded once.
	sentenceTokenizerOnce sync.Once
	// sentenceTokenizer holds the initialized sentence tokenizer instance.
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
	// sentenceTokenizerErr caches any initialization error.
	sentenceTokenizerErr error
)

// segmentSentences splits a passage into sentences using English Punkt
// training data. The extractor numbers these in its judge request so the
// model decomposes sentence by sentence.
func segmentSentences(text string) ([]string, error) {
	sentenceTokenizerOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			sentenceTokenizerErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			sentenceTokenizerErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		sentenceTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if sentenceTokenizerErr != nil {
		return nil, sentenceTokenizerErr
	}
	raw := sentenceTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// numberSentences renders sentences as the numbered list fed to the judge.
func numberSentences(sents []string) string {
	var sb strings.Builder
	for i, s := range sents {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	return sb.String()
}
