// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for talking to MediaWiki sites.
package httputil

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff when a
// response carries no Retry-After header. Tests override this to avoid
// real sleeps.
var RetryBaseDelay = 1 * time.Second

const defaultMaxRetries = 3

// retryable reports whether the status code warrants a retry. MediaWiki
// answers 429 when rate limited and 503 during read-only maintenance
// windows; both usually clear within seconds.
func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// DoWithRetry executes an HTTP request and retries on 429 and 503
// responses. The wait honors the server's Retry-After header when it
// carries a delay in seconds; otherwise it backs off exponentially from
// RetryBaseDelay (1 s, 2 s, 4 s, ...).
//
// When maxRetries is 0 the default (3) is used. Each retried response
// body is drained and closed before sleeping. If the context is cancelled
// during a wait the function returns ctx.Err(). After exhausting retries
// the last response is returned so the caller can report its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	delay := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := delay
		if s := resp.Header.Get("Retry-After"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
				wait = time.Duration(secs) * time.Second
			}
		}
		delay *= 2

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}
