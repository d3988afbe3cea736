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
	"net/http"

	"github.com/rs/zerolog/log"
)

// SendOptions sends an HTTP OPTIONS response for this server.
func SendOptions(response http.ResponseWriter, request *http.Request) {
	response.Header().Add("Allow", "OPTIONS, GET")
	response.WriteHeader(http.StatusNoContent)
	log.Debug().Msgf("%v %v %v", request.RemoteAddr, request.Method, request.URL)
}
