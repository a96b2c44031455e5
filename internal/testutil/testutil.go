package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(bodyBytes)
	}
	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
	}
}

// Decode unmarshals the recorded body into v.
func (rr RecordResponse) Decode(v interface{}) error {
	return json.Unmarshal(rr.Raw, v)
}

// ErrorMessage returns the "error" field of a JSON error body.
func (rr RecordResponse) ErrorMessage() string {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(rr.Raw, &body)
	return body.Error
}
