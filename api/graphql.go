package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Request is a GraphQL operation: the query document and its variables.
// Custom operations against the remote.it schema use this directly with Do.
type Request struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	Variables     any    `json:"variables,omitempty"`
}

// GraphQLError is a single error from the GraphQL response envelope.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Response is the GraphQL response envelope. Data is nil when the service
// returned only errors.
type Response[T any] struct {
	Data   *T             `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// Do sends a signed GraphQL request and decodes the response envelope with
// data typed as T. GraphQL-level errors are returned inside the envelope,
// not as a Go error; catalog methods convert them via dataOrError.
func Do[T any](ctx context.Context, c *Client, req Request) (*Response[T], error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("api: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(GraphQLPath), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.requestID {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, httpResp.Status)
	}

	var resp Response[T]
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("api: decode response: %w", err)
	}

	return &resp, nil
}

// dataOrError unwraps the envelope for catalog methods: GraphQL errors or a
// missing data object become a Go error.
func dataOrError[T any](resp *Response[T]) (*T, error) {
	if len(resp.Errors) > 0 {
		messages := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			messages = append(messages, e.Message)
		}

		return nil, fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(messages, "; "))
	}

	if resp.Data == nil {
		return nil, fmt.Errorf("%w: empty data", ErrGraphQL)
	}

	return resp.Data, nil
}
