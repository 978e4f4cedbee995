//
// Tencent is pleased to support the open source community by making trpc-rag-eval available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-rag-eval is licensed under the Apache License Version 2.0.
//
//

// Package config loads evaluation run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"trpc.group/trpc-go/trpc-rag-eval/judge"
	"trpc.group/trpc-go/trpc-rag-eval/judge/ollamajudge"
	"trpc.group/trpc-go/trpc-rag-eval/judge/openaijudge"
)

// Judge backends.
const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
)

// Config describes one evaluation run.
type Config struct {
	Judge            JudgeConfig `yaml:"judge"`             // Judge backend settings.
	ChunkParallelism int         `yaml:"chunk_parallelism"` // Concurrent claim extractions per question; 0 means the default.
	DatasetPath      string      `yaml:"dataset_path"`      // JSON-lines dataset file.
	ReportDir        string      `yaml:"report_dir"`        // Directory reports are saved to; empty disables saving.
}

// JudgeConfig selects and tunes the judge backend.
type JudgeConfig struct {
	Backend     string      `yaml:"backend"`     // "openai" or "ollama".
	Model       string      `yaml:"model"`       // Backend model name; empty means the backend default.
	BaseURL     string      `yaml:"base_url"`    // Override endpoint; empty means the backend default.
	APIKeyEnv   string      `yaml:"api_key_env"` // Environment variable holding the API key.
	Temperature *float64    `yaml:"temperature"` // Sampling temperature; nil means the backend default.
	Retry       RetryConfig `yaml:"retry"`       // Retry policy overrides.
}

// RetryConfig overrides the default judge retry policy. Zero values keep the
// defaults.
type RetryConfig struct {
	MaxRetries  *int          `yaml:"max_retries"`
	CallTimeout time.Duration `yaml:"call_timeout"`
	Backoff     time.Duration `yaml:"backoff"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values no run could work with.
func (c *Config) Validate() error {
	switch c.Judge.Backend {
	case BackendOpenAI, BackendOllama:
	case "":
		return errors.New("judge backend is empty")
	default:
		return fmt.Errorf("unknown judge backend %q", c.Judge.Backend)
	}
	if c.ChunkParallelism < 0 {
		return errors.New("chunk parallelism must not be negative")
	}
	if c.Judge.Retry.MaxRetries != nil && *c.Judge.Retry.MaxRetries < 0 {
		return errors.New("max retries must not be negative")
	}
	if c.Judge.Retry.CallTimeout < 0 {
		return errors.New("call timeout must not be negative")
	}
	if c.Judge.Retry.Backoff < 0 {
		return errors.New("backoff must not be negative")
	}
	return nil
}

// RetryPolicy builds the judge retry policy with the configured overrides
// applied over the defaults.
func (c *Config) RetryPolicy() judge.RetryPolicy {
	policy := judge.DefaultRetryPolicy()
	if c.Judge.Retry.MaxRetries != nil {
		policy.MaxRetries = *c.Judge.Retry.MaxRetries
	}
	if c.Judge.Retry.CallTimeout > 0 {
		policy.CallTimeout = c.Judge.Retry.CallTimeout
	}
	if backoff := c.Judge.Retry.Backoff; backoff > 0 {
		policy.Backoff = func(int) time.Duration { return backoff }
	}
	return policy
}

// BuildJudge constructs the configured backend judge wrapped with the retry
// policy.
func (c *Config) BuildJudge() (judge.Judge, error) {
	backend, err := c.buildBackend()
	if err != nil {
		return nil, err
	}
	return judge.NewResilient(backend, c.RetryPolicy()), nil
}

func (c *Config) buildBackend() (judge.Judge, error) {
	switch c.Judge.Backend {
	case BackendOpenAI:
		var opt []openaijudge.Option
		if c.Judge.Model != "" {
			opt = append(opt, openaijudge.WithModel(c.Judge.Model))
		}
		if c.Judge.BaseURL != "" {
			opt = append(opt, openaijudge.WithBaseURL(c.Judge.BaseURL))
		}
		if c.Judge.APIKeyEnv != "" {
			opt = append(opt, openaijudge.WithAPIKey(os.Getenv(c.Judge.APIKeyEnv)))
		}
		if c.Judge.Temperature != nil {
			opt = append(opt, openaijudge.WithTemperature(*c.Judge.Temperature))
		}
		return openaijudge.New(opt...)
	case BackendOllama:
		var opt []ollamajudge.Option
		if c.Judge.Model != "" {
			opt = append(opt, ollamajudge.WithModel(c.Judge.Model))
		}
		if c.Judge.BaseURL != "" {
			opt = append(opt, ollamajudge.WithBaseURL(c.Judge.BaseURL))
		}
		if c.Judge.Temperature != nil {
			opt = append(opt, ollamajudge.WithTemperature(*c.Judge.Temperature))
		}
		return ollamajudge.New(opt...)
	default:
		return nil, fmt.Errorf("unknown judge backend %q", c.Judge.Backend)
	}
}
