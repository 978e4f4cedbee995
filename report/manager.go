//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package report

import "context"

// Manager persists finished evaluation reports.
type Manager interface {
	// Save stores the report and returns its run ID.
	Save(ctx context.Context, report *EvaluationReport) (string, error)
	// Get returns the report stored under runID.
	Get(ctx context.Context, runID string) (*EvaluationReport, error)
	// List returns the stored run IDs.
	List(ctx context.Context) ([]string, error)
}
