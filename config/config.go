// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultBucket is the gallery bucket created by the deployment scripts.
const DefaultBucket = "image-storage-6552"

// Config holds all configuration for the function.
type Config struct {
	// Bucket is listed on every invocation.
	Bucket string
	// Region for the S3 client. Empty defers to the AWS default chain.
	Region string
	// Port is only used by the local server.
	Port     string
	LogLevel zerolog.Level
	// LogPrefix limits per-entry debug logging to keys under it.
	LogPrefix string
}

// Load reads configuration from environment variables.
func Load() *Config {
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return &Config{
		Bucket:    getEnv("BUCKET_NAME", DefaultBucket),
		Region:    os.Getenv("AWS_REGION"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  level,
		LogPrefix: os.Getenv("LOG_PREFIX"),
	}
}

// SetupLogging applies the configured level to the global logger.
func (c *Config) SetupLogging() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Debug().Str("bucket", c.Bucket).Str("region", c.Region).Msg("configuration loaded")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
