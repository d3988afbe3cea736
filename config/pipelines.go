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
	"context"
	"strings"

	"github.com/DomZippilli/s3-image-gallery-function/filter"
	"github.com/rs/zerolog"
)

// DEFAULT: Serve files only, never folder markers.
var Default = filter.Pipeline{
	filter.SkipFolders,
}

// Same as Default, but every listed entry is logged at debug level.
var Verbose = filter.Pipeline{
	filter.LogEntry,
	filter.SkipFolders,
}

// Prefixed is Default, but only entries under prefix are logged.
func Prefixed(prefix string) filter.Pipeline {
	return filter.Pipeline{
		logUnder(prefix),
		filter.SkipFolders,
	}
}

// logUnder applies the LogEntry filter, but only if the key starts with
// prefix.
func logUnder(prefix string) filter.EntryFilter {
	underPrefix := func(h filter.EntryHandle) bool {
		return strings.HasPrefix(h.Key, prefix)
	}
	return func(c context.Context, h filter.EntryHandle) bool {
		return filter.FilterIf(c, h, underPrefix, filter.LogEntry)
	}
}

// Pipeline picks the entry pipeline for the configured log level.
func (c *Config) Pipeline() filter.Pipeline {
	if c.LogLevel > zerolog.DebugLevel {
		return Default
	}
	if c.LogPrefix != "" {
		return Prefixed(c.LogPrefix)
	}
	return Verbose
}
