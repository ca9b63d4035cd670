package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"social-client/contract"
	apperrors "social-client/errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CheckTokenPath  = "/checkToken"
	RequestIDHeader = "X-Request-ID"
	maxResponseSize = 1 << 20
)

type checkTokenRequest struct {
	Token string `json:"token"`
}

// TokenValidator calls the backend's token check endpoint.
type TokenValidator struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewTokenValidator(log *slog.Logger, baseURL string, timeout time.Duration) contract.ITokenValidator {
	return NewTokenValidatorWithClient(log, baseURL, &http.Client{Timeout: timeout})
}

func NewTokenValidatorWithClient(log *slog.Logger, baseURL string, httpClient *http.Client) contract.ITokenValidator {
	return &TokenValidator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// CheckToken posts the token and coerces the response body to a boolean.
// Any error (network, non-2xx status, cancellation) is returned as-is so the
// caller can tell a rejected token from a failed request.
func (v *TokenValidator) CheckToken(ctx context.Context, token string) (bool, error) {
	body, err := json.Marshal(checkTokenRequest{Token: token})
	if err != nil {
		return false, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+CheckTokenPath, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("%w: %d", apperrors.ErrUnexpectedStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	valid := Truthy(raw)
	v.log.Debug("Token checked", "request_id", requestID, "valid", valid)
	return valid, nil
}

// Truthy interprets a response body the way a JavaScript client would:
// false, 0, "", null and an empty body are falsy, everything else is truthy.
// A body that is not JSON is read as a plain string.
func Truthy(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return true
	}

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}
