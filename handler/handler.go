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

// Package handler answers gallery invocations with the public URLs of the
// images stored in a bucket.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DomZippilli/s3-image-gallery-function/backends/s3"
	"github.com/DomZippilli/s3-image-gallery-function/common"
	"github.com/DomZippilli/s3-image-gallery-function/filter"

	"github.com/aws/aws-lambda-go/events"
)

// Handler lists one bucket per invocation. It holds no per-invocation state
// and is safe for concurrent use.
type Handler struct {
	lister   s3.ObjectLister
	bucket   string
	pipeline filter.Pipeline
}

// New returns a Handler listing bucket through lister.
func New(lister s3.ObjectLister, bucket string, pipeline filter.Pipeline) *Handler {
	return &Handler{
		lister:   lister,
		bucket:   bucket,
		pipeline: pipeline,
	}
}

// Handle lists the bucket and returns the image list as a JSON response.
// The request is not inspected. Listing errors are returned wrapped;
// there is no error response shape.
func (h *Handler) Handle(ctx context.Context,
	_ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	images, err := s3.ListImages(ctx, h.lister, h.bucket, h.pipeline)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	body, err := encode(common.ImageList{Images: images})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: body,
	}, nil
}

// encode marshals v without HTML escaping, so '&' in keys stays readable.
func encode(v interface{}) (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode body: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
