package agent

import (
	apperrors "interview-coach/internal/app/errors"
)

// providerError attaches the operation's sentinel to a provider failure.
// Rate limiting and timeouts keep their kind so callers can retry.
func providerError(sentinel *apperrors.Error, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindProviderRateLimited, apperrors.KindProviderTimeout:
		return err
	}
	return apperrors.WithCause(sentinel, err)
}
