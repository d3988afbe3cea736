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
package common

import (
	"fmt"
	"strings"
)

// FolderSuffix marks a key as a pseudo-directory rather than a file.
const FolderSuffix = "/"

// Image is a reference to one publicly readable object in the bucket.
type Image struct {
	URL string `json:"url"`
}

// ImageList is the body returned to gallery clients.
type ImageList struct {
	Images []Image `json:"images"`
}

// ObjectURL returns the virtual-hosted style public URL for a key.
// The key is used as-is; it is not percent-encoded.
func ObjectURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}

// IsFolder tests whether a key is a folder marker.
func IsFolder(key string) bool {
	return strings.HasSuffix(key, FolderSuffix)
}
