//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
judge:
  backend: ollama
  model: llama3.1
  base_url: http://127.0.0.1:11434
  temperature: 0.1
  retry:
    max_retries: 1
    call_timeout: 30s
    backoff: 5s
chunk_parallelism: 8
dataset_path: testdata/dataset.jsonl
report_dir: /tmp/reports
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendOllama, cfg.Judge.Backend)
	assert.Equal(t, "llama3.1", cfg.Judge.Model)
	require.NotNil(t, cfg.Judge.Temperature)
	assert.Equal(t, 0.1, *cfg.Judge.Temperature)
	require.NotNil(t, cfg.Judge.Retry.MaxRetries)
	assert.Equal(t, 1, *cfg.Judge.Retry.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Judge.Retry.CallTimeout)
	assert.Equal(t, 8, cfg.ChunkParallelism)
	assert.Equal(t, "testdata/dataset.jsonl", cfg.DatasetPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "empty backend",
			cfg:     Config{},
			wantErr: "judge backend is empty",
		},
		{
			name:    "unknown backend",
			cfg:     Config{Judge: JudgeConfig{Backend: "bedrock"}},
			wantErr: "unknown judge backend",
		},
		{
			name:    "negative parallelism",
			cfg:     Config{Judge: JudgeConfig{Backend: BackendOpenAI}, ChunkParallelism: -1},
			wantErr: "chunk parallelism",
		},
		{
			name:    "negative backoff",
			cfg:     Config{Judge: JudgeConfig{Backend: BackendOpenAI, Retry: RetryConfig{Backoff: -time.Second}}},
			wantErr: "backoff",
		},
		{
			name: "valid",
			cfg:  Config{Judge: JudgeConfig{Backend: BackendOpenAI}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRetryPolicyOverrides(t *testing.T) {
	maxRetries := 5
	cfg := Config{Judge: JudgeConfig{Backend: BackendOpenAI, Retry: RetryConfig{
		MaxRetries:  &maxRetries,
		CallTimeout: 10 * time.Second,
		Backoff:     time.Second,
	}}}
	policy := cfg.RetryPolicy()
	assert.Equal(t, 5, policy.MaxRetries)
	assert.Equal(t, 10*time.Second, policy.CallTimeout)
	assert.Equal(t, time.Second, policy.Backoff(0))
	assert.Equal(t, time.Second, policy.Backoff(3))
}

func TestRetryPolicyDefaults(t *testing.T) {
	cfg := Config{Judge: JudgeConfig{Backend: BackendOpenAI}}
	policy := cfg.RetryPolicy()
	assert.Equal(t, judge.DefaultMaxRetries, policy.MaxRetries)
	assert.Equal(t, judge.DefaultCallTimeout, policy.CallTimeout)
	assert.Equal(t, judge.DefaultBackoffDelay, policy.Backoff(0))
}

func TestBuildJudge(t *testing.T) {
	cfg := Config{Judge: JudgeConfig{Backend: BackendOllama, Model: "llama3.1"}}
	j, err := cfg.BuildJudge()
	require.NoError(t, err)
	assert.NotNil(t, j)
}
