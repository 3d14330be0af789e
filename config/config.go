// Copyright 2025 PracticePreach
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AIConfig configures the OpenAI-compatible embedding and chat services.
type AIConfig struct {
	EmbeddingHost  string `yaml:"embedding_host"`
	ChatHost       string `yaml:"chat_host"`
	EmbeddingModel string `yaml:"embedding_model"`
	ChatModel      string `yaml:"chat_model"`
	TokenEnv       string `yaml:"token_env"`
	TimeoutSecs    int    `yaml:"timeout_secs"`
}

// StorageConfig configures the embedded vector store.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// IngestionConfig configures document chunking and batch storage.
type IngestionConfig struct {
	BatchSize    int `yaml:"batch_size"`
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
}

// RetrievalConfig configures filtered similarity search.
type RetrievalConfig struct {
	Limit int `yaml:"limit"`
}

// AlignmentConfig configures alignment scoring.
type AlignmentConfig struct {
	PoolSize int `yaml:"pool_size"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	AI        AIConfig        `yaml:"ai"`
	Storage   StorageConfig   `yaml:"storage"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Alignment AlignmentConfig `yaml:"alignment"`
	LogLevel  string          `yaml:"log_level"`
}

// Token resolves the API token from the configured environment variable.
// Returns "none" when the variable is unset, which local OpenAI-compatible
// services accept.
func (c *AIConfig) Token() string {
	if c.TokenEnv == "" {
		return "none"
	}
	if token := os.Getenv(c.TokenEnv); token != "" {
		return token
	}
	return "none"
}

// Timeout returns the request timeout as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// LoadEnv loads a .env file from the working directory if present.
// A missing file is not an error.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./preach.yaml first, then ~/.config/preach/config.yaml.
// If neither exists, it returns defaults without writing a file.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "preach.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return defaultConfig(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "preach", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.AI.EmbeddingHost == "" {
		cfg.AI.EmbeddingHost = "http://localhost:11434/v1"
	}
	if cfg.AI.ChatHost == "" {
		cfg.AI.ChatHost = cfg.AI.EmbeddingHost
	}
	if cfg.AI.EmbeddingModel == "" {
		cfg.AI.EmbeddingModel = "embeddinggemma"
	}
	if cfg.AI.ChatModel == "" {
		cfg.AI.ChatModel = "qwen2.5:7b"
	}
	if cfg.AI.TokenEnv == "" {
		cfg.AI.TokenEnv = "PREACH_API_TOKEN"
	}
	if cfg.AI.TimeoutSecs == 0 {
		cfg.AI.TimeoutSecs = 60
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "preach.db"
	}
	if cfg.Ingestion.BatchSize == 0 {
		cfg.Ingestion.BatchSize = 64
	}
	if cfg.Ingestion.ChunkSize == 0 {
		cfg.Ingestion.ChunkSize = 500
	}
	if cfg.Ingestion.ChunkOverlap == 0 {
		cfg.Ingestion.ChunkOverlap = 200
	}
	if cfg.Retrieval.Limit == 0 {
		cfg.Retrieval.Limit = 50
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
