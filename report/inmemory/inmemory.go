//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory implementation of report.Manager.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-rag-eval/report"
)

// manager implements report.Manager in process memory.
type manager struct {
	mu      sync.RWMutex
	reports map[string]*report.EvaluationReport
}

// New creates an in-memory report manager.
func New() report.Manager {
	return &manager{reports: make(map[string]*report.EvaluationReport)}
}

// Save stores the report and returns its run ID, assigning one if absent.
func (m *manager) Save(_ context.Context, evalReport *report.EvaluationReport) (string, error) {
	if evalReport == nil {
		return "", errors.New("report is nil")
	}
	if evalReport.RunID == "" {
		evalReport.RunID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[evalReport.RunID] = evalReport
	return evalReport.RunID, nil
}

// Get returns the report stored under runID.
func (m *manager) Get(_ context.Context, runID string) (*report.EvaluationReport, error) {
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	evalReport, ok := m.reports[runID]
	if !ok {
		return nil, fmt.Errorf("report %s not found: %w", runID, os.ErrNotExist)
	}
	return evalReport, nil
}

// List returns the stored run IDs in lexical order.
func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	runIDs := make([]string, 0, len(m.reports))
	for runID := range m.reports {
		runIDs = append(runIDs, runID)
	}
	sort.Strings(runIDs)
	return runIDs, nil
}
