package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/dto"
)

const evaluatePath = "/api/v1/evaluate"

// APIExecutor posts expressions to a running calc_api. Latency is the full
// HTTP round trip.
type APIExecutor struct {
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(baseURL string) *APIExecutor {
	return &APIExecutor{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *APIExecutor) Execute(ctx context.Context, notation calc.Notation, expression string) (*Execution, error) {
	payload, err := json.Marshal(dto.EvaluateRequest{Notation: notation.String(), Expression: expression})
	if err != nil {
		return nil, fmt.Errorf("api encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+evaluatePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var ok dto.EvaluateResponse
		if err := json.Unmarshal(body, &ok); err != nil {
			return nil, fmt.Errorf("api parse response: %w", err)
		}
		return &Execution{Value: ok.Result, Latency: latency}, nil
	case http.StatusUnprocessableEntity:
		var failed dto.ErrorResponse
		if err := json.Unmarshal(body, &failed); err != nil {
			return nil, fmt.Errorf("api parse error response: %w", err)
		}
		kind, err := apperr.ParseKind(failed.Title)
		if err != nil {
			return nil, fmt.Errorf("api error response: %w", err)
		}
		return &Execution{ErrorKind: kind, Error: failed.Error, Latency: latency}, nil
	default:
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func (e *APIExecutor) Name() string { return "api(" + e.baseURL + ")" }
func (e *APIExecutor) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
