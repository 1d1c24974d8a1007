package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Endpoint describes one remote operation: where it lives, which query
// parameter carries its IDs, which envelope field holds the result and
// what to return when nothing usable comes back.
type Endpoint[T any] struct {
	Path    string
	Param   string // query parameter for ID lists; empty when the endpoint takes no input
	Key     string // envelope field to extract; empty returns the whole envelope
	Default func() T
}

// Descriptor returns the untyped view of the endpoint.
func (e Endpoint[T]) Descriptor() Descriptor {
	return Descriptor{Path: e.Path, Param: e.Param, Key: e.Key}
}

// Descriptor is the static, type-free part of an Endpoint.
type Descriptor struct {
	Path  string `json:"path" yaml:"path"`
	Param string `json:"param,omitempty" yaml:"param,omitempty"`
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
}

// executor performs every request made by the façades. It is immutable
// after construction.
type executor struct {
	baseURL string
	http    *resty.Client
	logger  ErrorLogger
}

// query builds the parameters for an endpoint. IDs are joined with a bare
// comma; an empty slice yields an empty value.
func (e Endpoint[T]) query(ids []string) map[string]string {
	if e.Param == "" {
		return nil
	}
	return map[string]string{e.Param: strings.Join(ids, ",")}
}

// call runs ep against the API and never fails: any error is logged and
// replaced by the endpoint default.
func call[T any](ctx context.Context, x *executor, ep Endpoint[T], ids []string) T {
	v, err := execute(ctx, x, ep.Path, ep.query(ids), ep.Key, ep.Default)
	if err != nil {
		x.logger.LogError(fmt.Sprintf("Error fetching data from %s: %v", ep.Path, err))
		return ep.Default()
	}
	return v
}

// execute issues the GET and extracts key from the envelope. A nil error
// with the default means the key was absent, which is not a failure.
func execute[T any](ctx context.Context, x *executor, path string, query map[string]string, key string, def func() T) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := x.get(ctx, path, query)
	if err != nil {
		return def(), err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return def(), &DecodeError{Path: path, Err: err}
	}

	if key == "" {
		if len(envelope) == 0 {
			return def(), nil
		}
		return decodeValue(path, body, def)
	}

	raw, ok := envelope[key]
	if !ok || isNull(raw) {
		return def(), nil
	}
	return decodeValue(path, raw, def)
}

// get performs the HTTP round trip and returns the raw body of a 2xx
// response.
func (x *executor) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := x.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(x.baseURL + path)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{
			Path:       path,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status()),
		}
	}

	return resp.Body(), nil
}

// decodeValue decodes raw into a fresh T. Numbers in opaque values are kept
// as json.Number so they round-trip exactly.
func decodeValue[T any](path string, raw []byte, def func() T) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return def(), &DecodeError{Path: path, Err: err}
	}
	return v, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
