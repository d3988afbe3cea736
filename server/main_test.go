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
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DomZippilli/s3-image-gallery-function/config"
	"github.com/DomZippilli/s3-image-gallery-function/handler"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct{}

func (fakeLister) ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input,
	optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	return &awss3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("a.jpg")},
			{Key: aws.String("folder/")},
		},
	}, nil
}

func TestServeGalleryGet(t *testing.T) {
	gallery := handler.New(fakeLister{}, "photos", config.Default)
	srv := httptest.NewServer(ServeGallery(gallery.Handle))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"images":[{"url":"https://photos.s3.amazonaws.com/a.jpg"}]}`, string(body))
}

func TestServeGalleryBody(t *testing.T) {
	invoke := func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"images":[{"url":"https://photos.s3.amazonaws.com/a.jpg"}]}`,
		}, nil
	}
	rec := httptest.NewRecorder()
	ServeGallery(invoke)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"images":[{"url":"https://photos.s3.amazonaws.com/a.jpg"}]}`, rec.Body.String())
}

func TestServeGalleryError(t *testing.T) {
	invoke := func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("AccessDenied")
	}
	rec := httptest.NewRecorder()
	ServeGallery(invoke)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServeGalleryMethods(t *testing.T) {
	called := false
	invoke := func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		called = true
		return events.APIGatewayProxyResponse{}, nil
	}

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodOptions, http.StatusNoContent},
		{http.MethodPost, http.StatusMethodNotAllowed},
		{http.MethodDelete, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ServeGallery(invoke)(rec, httptest.NewRequest(tt.method, "/", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
	assert.False(t, called)
}
