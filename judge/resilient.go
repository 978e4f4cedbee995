//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package judge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trpc.group/trpc-go/trpc-rag-eval/log"
)

// resilient decorates a backend Judge with the retry and timeout policy.
// It is the sole place resilience is applied to judge traffic.
type resilient struct {
	backend Judge
	policy  RetryPolicy
	// sleep waits out the backoff delay. Overridable in tests for a fake clock.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewResilient wraps backend so that every operation runs under the supplied
// retry policy. Exhausted retries and non-retryable transport failures
// surface as ErrUnavailable; any other backend error propagates unchanged.
func NewResilient(backend Judge, policy RetryPolicy) Judge {
	return &resilient{
		backend: backend,
		policy:  policy,
		sleep:   sleepContext,
	}
}

// ExtractClaims decomposes text into atomic factual claims.
func (r *resilient) ExtractClaims(ctx context.Context, text string) ([]RawClaim, error) {
	return invoke(ctx, r, "extract_claims", func(ctx context.Context) ([]RawClaim, error) {
		return r.backend.ExtractClaims(ctx, text)
	})
}

// JudgeEntailment reports whether the claim is supported by the premises.
func (r *resilient) JudgeEntailment(ctx context.Context, claim string, premises []string) (bool, error) {
	return invoke(ctx, r, "judge_entailment", func(ctx context.Context) (bool, error) {
		return r.backend.JudgeEntailment(ctx, claim, premises)
	})
}

// Score produces the six holistic scores for one question.
func (r *resilient) Score(ctx context.Context, req *ScoreRequest) (*ScoreResult, error) {
	return invoke(ctx, r, "score", func(ctx context.Context) (*ScoreResult, error) {
		return r.backend.Score(ctx, req)
	})
}

// invoke runs one judge operation under the retry policy. Each attempt gets
// its own timeout derived from the caller context, so a timed-out attempt is
// retryable while a caller cancellation still aborts immediately.
func invoke[T any](ctx context.Context, r *resilient, operation string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt <= r.policy.MaxRetries; attempt++ {
		result, err := attemptOnce(ctx, r.policy.CallTimeout, op)
		if err == nil {
			if attempt > 0 {
				log.Debugf("judge operation %s succeeded on attempt %d", operation, attempt+1)
			}
			return result, nil
		}
		if ctx.Err() != nil {
			// Caller cancellation wins over any retry classification.
			return zero, ctx.Err()
		}
		if r.policy.Retryable == nil || !r.policy.Retryable(err) {
			if _, ok := statusCode(err); ok {
				return zero, fmt.Errorf("%w: %w", ErrUnavailable, err)
			}
			return zero, err
		}
		lastErr = err
		if attempt == r.policy.MaxRetries {
			break
		}
		delay := r.policy.Backoff(attempt + 1)
		log.Debugf("judge operation %s attempt %d failed, retrying in %s: %v",
			operation, attempt+1, delay, err)
		if err := r.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, fmt.Errorf("%w: retries exhausted: %w", ErrUnavailable, lastErr)
}

// attemptOnce runs a single attempt under the per-call timeout.
func attemptOnce[T any](ctx context.Context, timeout time.Duration, op func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	result, err := op(ctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
		// Normalize so the retry predicate sees the timeout condition even
		// when the backend wrapped it.
		return result, context.DeadlineExceeded
	}
	return result, err
}

// sleepContext waits for the delay or the caller cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
