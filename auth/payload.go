package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Flatten serializes a request specification into flat query values.
// Specs are plain structs with json tags; nested objects and arrays are
// rejected because the exchange's signed payloads are one level deep.
func Flatten(params any) (url.Values, error) {
	values := url.Values{}
	if params == nil {
		return values, nil
	}

	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize parameters: %w", err)
	}
	if bytes.Equal(data, []byte("null")) {
		return values, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("parameters must serialize to an object: %w", err)
	}

	for key, val := range fields {
		s, err := paramString(val)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
		values.Set(key, s)
	}
	return values, nil
}

func paramString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported nested value %T", val)
	}
}

// SignQuery stamps the values with timestamp and recvWindow, signs the
// canonical payload and appends the signature. The apiKey is stamped in
// only when includeAPIKey is set: the WebSocket transport signs over it
// while REST carries the key in a header. The canonical payload
// is the URL-encoded form sorted by key, which is exactly what
// url.Values.Encode produces. The returned values are ready to send;
// the payload is returned for diagnostics and tests.
func SignQuery(values url.Values, signer Signer, recvWindow int64, includeAPIKey bool) (url.Values, string, error) {
	if includeAPIKey {
		values.Set("apiKey", signer.APIKey())
	}
	values.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	values.Set("recvWindow", strconv.FormatInt(recvWindow, 10))

	payload := values.Encode()
	signature, err := signer.Sign(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign payload: %w", err)
	}
	values.Set("signature", signature)
	return values, payload, nil
}
