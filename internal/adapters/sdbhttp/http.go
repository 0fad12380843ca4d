package sdbhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send performs one request against baseURL+path and decodes a 2xx body into out.
//
// Failures are normalized:
//   - non-2xx with a JSON body carrying a message -> *domain.DomainError
//   - any other non-2xx, network errors, undecodable bodies -> *domain.TransportError
//
// out may be nil when the caller does not need the body.
func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	body any,
	out any,
) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.TransportError{Kind: domain.KindNetwork, Message: op, Err: err}
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return &domain.TransportError{Kind: domain.KindNetwork, Message: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Kind: domain.KindNetwork, Message: op + ": read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.TransportError{Kind: domain.KindDecode, Message: op, Err: err}
	}

	if err := c.checkSchema(out); err != nil {
		return &domain.TransportError{Kind: domain.KindSchema, Message: op, Err: err}
	}

	return nil
}

// statusError builds the error for a non-2xx answer, preserving a
// server-authored message when the body carries one.
func statusError(op string, code int, raw []byte) error {
	var eb contracts.ErrorBody
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && json.Unmarshal(trimmed, &eb) == nil && eb.Message != "" {
		status := eb.Status
		if status == "" {
			status = fmt.Sprintf("HTTP_%d", code)
		}
		return &domain.DomainError{Status: status, Message: eb.Message, HTTPStatus: code}
	}

	return &domain.TransportError{
		Kind:    domain.KindStatus,
		Message: op,
		Err: &httpStatusError{
			Code: code,
			Body: strings.TrimSpace(string(raw)),
		},
	}
}

// checkSchema validates a decoded response against its struct tags.
// Slices are checked element by element; the OTP-log endpoint returns one.
func (c *Client) checkSchema(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := c.validate.Struct(elem.Interface()); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}

	return nil
}

// expectSuccess turns a decoded envelope whose status is not SUCCESS into a
// *domain.DomainError carrying the backend message.
func expectSuccess(resp contracts.Enveloped) error {
	status, message := resp.StatusOf()
	if status == domain.StatusSuccess {
		return nil
	}
	return &domain.DomainError{Status: status, Message: message, HTTPStatus: http.StatusOK}
}

// call sends a request whose answer is wrapped in the {status, ...} envelope.
func call[T contracts.Enveloped](
	ctx context.Context,
	c *Client,
	method string,
	path string,
	body any,
) (T, error) {
	var out T
	if err := c.send(ctx, method, path, body, &out); err != nil {
		return out, err
	}
	if err := expectSuccess(out); err != nil {
		return out, err
	}
	return out, nil
}
