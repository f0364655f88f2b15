// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package jsonapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrResponseIsEmpty = errors.New("the response is empty")

// Result is just a nicer way to describe what's returned by the API methods.
// Its shape depends on the API and the method that were invoked.
type Result interface{}

type ErrorCode int

type Response struct {
	// Result is set when the method succeeded.
	Result Result `json:"result,omitempty"`

	// Error is set when the method failed.
	Error *ErrorDetails `json:"error,omitempty"`
}

// ErrorDetails is the error reported by the local API itself.
type ErrorDetails struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (d ErrorDetails) Error() string {
	if d.Code == 0 {
		return d.Message
	}
	return fmt.Sprintf("%s (code %d)", d.Message, d.Code)
}

// ParseResponse decodes the output of the local API. Numbers are kept as
// json.Number so large timestamps and amounts do not lose precision.
func ParseResponse(data []byte) (Response, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Response{}, ErrResponseIsEmpty
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	resp := Response{}
	if err := decoder.Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("could not decode the response: %w", err)
	}

	return resp, nil
}

// IsEmpty tells if the result carries nothing, following the loose rules of
// the local API clients: a missing value, false, zero and the empty string are
// empty. Empty arrays and objects are not.
func IsEmpty(r Result) bool {
	switch v := r.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		return err == nil && f == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	default:
		return false
	}
}
