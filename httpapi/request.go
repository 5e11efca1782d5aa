package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodySize bounds request bodies; session payloads are tiny.
const maxBodySize = 64 << 10 // 64KB

var errMalformedBody = errors.New("malformed request body")

type loginRequest struct {
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	MacAddress string `json:"macAddress"`
}

type sessionRequest struct {
	SessionID string `json:"sessionID"`
}

// decodeJSON strictly decodes the request body into v: JSON content type
// required, unknown fields rejected, trailing data rejected.
func decodeJSON(r *http.Request, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: expected application/json", errMalformedBody)
		}
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errMalformedBody)
		}
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	// Reject trailing garbage after the JSON document.
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", errMalformedBody)
	}

	return nil
}
