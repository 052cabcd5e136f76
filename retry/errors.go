package retry

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
)

// transientError marks an error as safe to retry.
type transientError struct {
	err error
}

func (e *transientError) Error() string   { return e.err.Error() }
func (e *transientError) Unwrap() error   { return e.err }
func (e *transientError) Transient() bool { return true }

// MarkTransient wraps err so that IsTransient reports true for it.
// Backends use it for failures their driver knows to be temporary.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// httpStatusCoder matches HTTP response errors from SDK clients.
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// IsTransient determines if an error is temporary and the operation can be
// retried. Context cancellation and deadline errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var marked interface{ Transient() bool }
	if errors.As(err, &marked) {
		return marked.Transient()
	}

	var sc httpStatusCoder
	if errors.As(err, &sc) && isTransientStatusCode(sc.HTTPStatusCode()) {
		return true
	}

	return isTransientNetworkError(err)
}

// isTransientStatusCode checks if an HTTP status code indicates a transient error.
func isTransientStatusCode(code int) bool {
	// 429 = Rate Limited
	if code == 429 {
		return true
	}
	// 5xx = Server Errors
	return code >= 500 && code < 600
}

// isTransientNetworkError checks for network-level transient errors.
func isTransientNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && isTransientNetworkError(urlErr.Err) {
			return true
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary
	}

	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		switch syscallErr {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.ETIMEDOUT, syscall.EPIPE:
			return true
		}
	}

	return false
}
