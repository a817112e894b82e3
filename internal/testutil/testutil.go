package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// BookPayload is the create/update body used across handler tests.
var BookPayload = map[string]string{
	"title":  "Livro",
	"author": "Autor",
	"isbn":   "001",
}

// NewRequest creates a new HTTP request for testing. A string body is sent
// verbatim; anything else is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	default:
		bodyBytes, _ = json.Marshal(body)
	}
	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code    int
	Header  http.Header
	RawBody []byte
	Body    map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:    result.StatusCode,
		Header:  result.Header,
		RawBody: bodyBytes,
		Body:    bodyMap,
	}
}

// Data returns the "data" object of a success envelope.
func (r RecordResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// List returns the "data" array of a success envelope.
func (r RecordResponse) List() []interface{} {
	list, _ := r.Body["data"].([]interface{})
	return list
}

// Meta returns the "meta" object of an envelope.
func (r RecordResponse) Meta() map[string]interface{} {
	meta, _ := r.Body["meta"].(map[string]interface{})
	return meta
}

// ErrorDetails returns error.details of an error envelope.
func (r RecordResponse) ErrorDetails() []interface{} {
	errBody, _ := r.Body["error"].(map[string]interface{})
	details, _ := errBody["details"].([]interface{})
	return details
}

// ErrorCode returns error.code of an error envelope.
func (r RecordResponse) ErrorCode() string {
	errBody, _ := r.Body["error"].(map[string]interface{})
	code, _ := errBody["code"].(string)
	return code
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}
