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

	"github.com/DomZippilli/s3-image-gallery-function/common"
	"github.com/DomZippilli/s3-image-gallery-function/filter"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// ListImages returns an image reference for each entry in the bucket that
// survives the pipeline, in listing order.
//
// Only the first page of results is read; no continuation token is followed,
// so buckets holding more keys than one page returns are truncated.
func ListImages(ctx context.Context, lister ObjectLister, bucket string,
	pipeline filter.Pipeline) ([]common.Image, error) {
	output, err := lister.ListObjectsV2(ctx, &awss3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("list objects in %s: %w", bucket, err)
	}

	images := make([]common.Image, 0, len(output.Contents))
	skipped := 0
	for _, object := range output.Contents {
		key := aws.ToString(object.Key)
		if !pipeline.Keep(ctx, filter.EntryHandle{Bucket: bucket, Key: key}) {
			skipped++
			continue
		}
		images = append(images, common.Image{URL: common.ObjectURL(bucket, key)})
	}

	if aws.ToBool(output.IsTruncated) {
		log.Warn().Str("bucket", bucket).Msg("listing truncated to first page")
	}
	log.Info().
		Str("bucket", bucket).
		Int("images", len(images)).
		Int("skipped", skipped).
		Msg("listed images")
	return images, nil
}
