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

	"github.com/DomZippilli/s3-image-gallery-function/backends/s3"
	"github.com/DomZippilli/s3-image-gallery-function/config"
	"github.com/DomZippilli/s3-image-gallery-function/handler"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogging()

	// one client per process, reused by every invocation
	client, err := s3.Client(context.Background(), cfg.Region)
	if err != nil {
		log.Fatal().Msgf("main: %v", err)
	}
	gallery := handler.New(client, cfg.Bucket, cfg.Pipeline())
	lambda.Start(gallery.Handle)
}
