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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-rag-eval/claim"
)

type extractionParam struct {
	idx       int
	ctx       context.Context
	text      string
	extractor ClaimExtractor
	results   []claim.Set
	errs      []error
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
}

func (p *extractionParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.text = ""
	p.extractor = nil
	p.results = nil
	p.errs = nil
	p.cancel = nil
	p.wg = nil
}

var extractionParamPool = &sync.Pool{
	New: func() any { return new(extractionParam) },
}

func createExtractionPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*extractionParam)
		if !ok {
			panic("claim extraction pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			extractionParamPool.Put(param)
		}()
		set, err := param.extractor.Extract(param.ctx, param.text)
		if err != nil {
			param.errs[param.idx] = err
			param.cancel()
			return
		}
		param.results[param.idx] = set
	})
	if err != nil {
		return nil, fmt.Errorf("create claim extraction pool: %w", err)
	}
	return pool, nil
}
