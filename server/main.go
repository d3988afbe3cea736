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
	"io/fs"
	"net/http"

	"github.com/DomZippilli/s3-image-gallery-function/backends/proxy"
	"github.com/DomZippilli/s3-image-gallery-function/backends/s3"
	"github.com/DomZippilli/s3-image-gallery-function/config"
	"github.com/DomZippilli/s3-image-gallery-function/handler"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// invokeFunc has the shape of handler.Handler.Handle.
type invokeFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

func main() {
	// a .env file is optional for local runs
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Msgf("load .env: %v", err)
	}
	cfg := config.Load()
	cfg.SetupLogging()

	log.Print("starting server...")
	client, err := s3.Client(context.Background(), cfg.Region)
	if err != nil {
		log.Fatal().Msgf("main: %v", err)
	}
	gallery := handler.New(client, cfg.Bucket, cfg.Pipeline())
	http.HandleFunc("/", ServeGallery(gallery.Handle))

	// Start HTTP server.
	log.Printf("listening on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal().Msgf("main: %v", err)
	}
}

// ServeGallery adapts a function handler to plain HTTP for local use.
func ServeGallery(invoke invokeFunc) http.HandlerFunc {
	return func(response http.ResponseWriter, request *http.Request) {
		// route HTTP methods to appropriate handlers
		switch request.Method {
		case http.MethodGet:
			envelope, err := invoke(request.Context(), events.APIGatewayProxyRequest{
				HTTPMethod: request.Method,
				Path:       request.URL.Path,
			})
			if err != nil {
				log.Error().Msgf("ServeGallery: %v", err)
				http.Error(response, http.StatusText(http.StatusInternalServerError),
					http.StatusInternalServerError)
				return
			}
			proxy.WriteEnvelope(response, envelope)
		case http.MethodOptions:
			proxy.SendOptions(response, request)
		default:
			http.Error(response, "405 - Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}
