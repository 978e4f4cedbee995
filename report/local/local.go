//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation of report.Manager.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-rag-eval/report"
)

const (
	reportFileSuffix      = ".report.json"
	defaultTempFileSuffix = ".tmp"
	defaultDirPermission  = 0o755
	defaultFilePermission = 0o644
)

// manager implements report.Manager backed by the local filesystem. Each run
// is stored as one pretty-printed JSON file under the base directory.
type manager struct {
	mu      sync.RWMutex
	baseDir string
}

// New creates a local file report manager rooted at baseDir.
func New(baseDir string) report.Manager {
	return &manager{baseDir: baseDir}
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
	if err := m.store(evalReport); err != nil {
		return "", fmt.Errorf("store report %s: %w", evalReport.RunID, err)
	}
	return evalReport.RunID, nil
}

// Get returns the report stored under runID.
func (m *manager) Get(_ context.Context, runID string) (*report.EvaluationReport, error) {
	if runID == "" {
		return nil, errors.New("run id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	path := m.reportPath(runID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	var evalReport report.EvaluationReport
	if err := json.Unmarshal(data, &evalReport); err != nil {
		return nil, fmt.Errorf("unmarshal file %s: %w", path, err)
	}
	return &evalReport, nil
}

// List returns the stored run IDs in lexical order.
func (m *manager) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", m.baseDir, err)
	}
	runIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, reportFileSuffix) {
			continue
		}
		runIDs = append(runIDs, strings.TrimSuffix(name, reportFileSuffix))
	}
	sort.Strings(runIDs)
	return runIDs, nil
}

// reportPath builds the path to the report file for a run.
func (m *manager) reportPath(runID string) string {
	return filepath.Join(m.baseDir, runID+reportFileSuffix)
}

// store writes the report to the file system via a temp file rename.
func (m *manager) store(evalReport *report.EvaluationReport) error {
	path := m.reportPath(evalReport.RunID)
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPermission); err != nil {
		return fmt.Errorf("mkdir all %s: %w", filepath.Dir(path), err)
	}
	tmp := path + defaultTempFileSuffix
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(evalReport); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode file %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename file %s to %s: %w", tmp, path, err)
	}
	return nil
}
