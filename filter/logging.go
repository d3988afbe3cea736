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
package filter

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogEntry doesn't drop the entry. It simply logs it.
func LogEntry(ctx context.Context, handle EntryHandle) bool {
	log.Debug().
		Str("bucket", handle.Bucket).
		Str("key", handle.Key).
		Msg("listed entry")
	return true
}
