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

	"github.com/DomZippilli/s3-image-gallery-function/common"
)

// EntryFilter functions decide whether a listed entry becomes an image.
// Returning false drops the entry.
type EntryFilter func(context.Context, EntryHandle) bool

// Pipeline is just a slice of EntryFilters. This alias is just here for semantics.
type Pipeline []EntryFilter

// EntryHandle identifies the entry under consideration.
type EntryHandle struct {
	Bucket string
	Key    string
}

// Keep runs the entry through each filter in order, stopping at the first
// one that drops it. An empty pipeline keeps everything.
func (p Pipeline) Keep(ctx context.Context, handle EntryHandle) bool {
	for _, filter := range p {
		if !filter(ctx, handle) {
			return false
		}
	}
	return true
}

// NoOp keeps every entry.
func NoOp(ctx context.Context, handle EntryHandle) bool {
	return true
}

// SkipFolders drops folder markers, i.e. keys ending in a slash.
func SkipFolders(ctx context.Context, handle EntryHandle) bool {
	return !common.IsFolder(handle.Key)
}

// FilterIf will apply a filter if condition() == true; otherwise, it will apply NoOp.
func FilterIf(ctx context.Context, handle EntryHandle,
	condition func(EntryHandle) bool, filter EntryFilter) bool {
	if condition(handle) {
		return filter(ctx, handle)
	}
	return NoOp(ctx, handle)
}
