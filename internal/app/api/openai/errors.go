package openai

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	apperrors "interview-coach/internal/app/errors"
)

// ClassifyError maps an SDK error onto the provider error kinds: HTTP 429
// is rate limiting, an expired deadline or a gateway timeout is a timeout,
// anything else means the provider is unavailable.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return apperrors.WithCause(apperrors.ErrProviderTimeout, err)
	}

	switch StatusCode(err) {
	case http.StatusTooManyRequests:
		return apperrors.WithCause(apperrors.ErrProviderRateLimited, err)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apperrors.WithCause(apperrors.ErrProviderTimeout, err)
	}
	return apperrors.WithCause(apperrors.ErrProviderUnavailable, err)
}

// StatusCode extracts the HTTP status of a failed API call, or 0
func StatusCode(err error) int {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// WrapFailure classifies err and files it under failure, except that rate
// limiting and timeouts keep their own kind
func WrapFailure(failure *apperrors.Error, err error) error {
	classified := ClassifyError(err)
	switch apperrors.KindOf(classified) {
	case apperrors.KindProviderRateLimited, apperrors.KindProviderTimeout:
		return classified
	}
	return apperrors.WithCause(failure, classified)
}
