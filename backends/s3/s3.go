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
package s3

import (
	"context"
	"fmt"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// defaultRegion is used when neither the caller nor the default credential
// chain supplies one.
const defaultRegion = "us-east-1"

// ObjectLister is the part of the S3 API this backend uses.
type ObjectLister interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input,
		optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

var _ ObjectLister = (*awss3.Client)(nil)

var (
	clientOnce sync.Once
	client     *awss3.Client
	clientErr  error
)

// Client returns the process-wide S3 client, creating it on first use.
// The client is shared by all invocations and never closed. A failed
// creation is not retried.
func Client(ctx context.Context, region string) (*awss3.Client, error) {
	clientOnce.Do(func() {
		client, clientErr = newClient(ctx, region)
	})
	return client, clientErr
}

func newClient(ctx context.Context, region string) (*awss3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	log.Debug().Str("region", cfg.Region).Msg("s3 client initialized")
	return awss3.NewFromConfig(cfg), nil
}

