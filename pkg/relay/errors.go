// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package relay

import (
	"net/http"

	"gitlab.com/tozd/go/errors"
)

const unknownError = "Unknown error"

// 🚫 UpstreamError means the contents API answered with a non-success status.
// Status and Message are passed through verbatim.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// 💥 InternalError is any other failure: network, malformed response, invalid item.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return unknownError
	}
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// 📦 ErrorBody is the JSON shape of a failed listing
type ErrorBody struct {
	Error   bool   `json:"error"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse maps err to the HTTP status and body the relay answers with.
func ErrorResponse(err error) (int, ErrorBody) {
	if uerr, ok := AsUpstream(err); ok {
		return uerr.Status, ErrorBody{Error: true, Status: uerr.Status, Message: uerr.Message}
	}

	msg := unknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return http.StatusInternalServerError, ErrorBody{Error: true, Message: msg}
}

// AsUpstream returns the *UpstreamError in err's chain, if any.
func AsUpstream(err error) (*UpstreamError, bool) {
	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		return uerr, true
	}
	return nil, false
}
