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
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

const (
	// DefaultCallTimeout bounds a single judge attempt.
	DefaultCallTimeout = 2 * time.Minute
	// DefaultMaxRetries is the number of additional attempts after the first.
	DefaultMaxRetries = 2
	// DefaultBackoffDelay is the fixed delay between attempts.
	DefaultBackoffDelay = 40 * time.Second
)

// RetryPolicy is an immutable description of how judge calls are retried.
// It is defined once and handed to NewResilient, so every evaluator inherits
// identical behavior.
type RetryPolicy struct {
	// MaxRetries is the number of additional attempts after the first failure.
	MaxRetries int
	// CallTimeout bounds each individual attempt.
	CallTimeout time.Duration
	// Backoff returns the delay before the given retry attempt (1-based).
	Backoff func(attempt int) time.Duration
	// Retryable reports whether the error from an attempt warrants a retry.
	Retryable func(err error) bool
}

// DefaultRetryPolicy returns the production policy: two retries on transient
// auth failures (401), rate limiting (429) or a timed-out attempt, with a
// fixed non-jittered 40s delay between attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:  DefaultMaxRetries,
		CallTimeout: DefaultCallTimeout,
		Backoff: func(int) time.Duration {
			return DefaultBackoffDelay
		},
		Retryable: IsTransientError,
	}
}

// IsTransientError reports whether the error is a transient judge failure.
// Covered conditions: HTTP 401, HTTP 429 and a client-side cancellation
// caused by the per-call timeout. Anything else, malformed output included,
// is terminal.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	code, ok := statusCode(err)
	if !ok {
		return false
	}
	return code == http.StatusUnauthorized || code == http.StatusTooManyRequests
}

// statusCode extracts an HTTP status from the error chain, recognizing both
// the local StatusError and openai-go API errors.
func statusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code, true
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}
