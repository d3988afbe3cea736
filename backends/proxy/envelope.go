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
package proxy

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// WriteEnvelope writes a function response envelope as a plain HTTP
// response: headers first, then status, then body.
func WriteEnvelope(response http.ResponseWriter, envelope events.APIGatewayProxyResponse) {
	for k, v := range envelope.Headers {
		response.Header().Set(k, v)
	}
	for k, vs := range envelope.MultiValueHeaders {
		for _, v := range vs {
			response.Header().Add(k, v)
		}
	}
	status := envelope.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	response.WriteHeader(status)
	if _, err := io.WriteString(response, envelope.Body); err != nil {
		log.Error().Msgf("WriteEnvelope: %v", err)
	}
}
