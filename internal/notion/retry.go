package notion

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// MaxRetries — сколько раз повторяется запрос после 429.
	MaxRetries = 3

	// InitialBackoff — первая пауза; далее удваивается: 500ms, 1s, 2s.
	InitialBackoff = 500 * time.Millisecond

	noRetryAfter time.Duration = -1
)

// retryPolicy — exponential backoff с подменой интервала из Retry-After.
//
// Экспоненциальная часть продвигается на каждой попытке, даже если
// интервал взят из заголовка: следующая пауза без заголовка считается
// по номеру попытки.
type retryPolicy struct {
	next       backoff.BackOff
	retryAfter time.Duration
}

func newRetryPolicy() *retryPolicy {
	// TODO: ограничить MaxInterval, если MaxRetries когда-нибудь вырастет.
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(InitialBackoff),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(time.Duration(math.MaxInt64)),
		backoff.WithMaxElapsedTime(0),
	)
	return &retryPolicy{
		next:       backoff.WithMaxRetries(exp, MaxRetries),
		retryAfter: noRetryAfter,
	}
}

// NextBackOff реализует backoff.BackOff.
func (p *retryPolicy) NextBackOff() time.Duration {
	d := p.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if p.retryAfter != noRetryAfter {
		d = p.retryAfter
	}
	p.retryAfter = noRetryAfter
	return d
}

// Reset реализует backoff.BackOff.
func (p *retryPolicy) Reset() {
	p.next.Reset()
	p.retryAfter = noRetryAfter
}

// parseRetryAfter разбирает Retry-After как целое число секунд.
// HTTP-дата не поддерживается и считается отсутствием заголовка.
func parseRetryAfter(v string) time.Duration {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return noRetryAfter
	}
	return time.Duration(n) * time.Second
}

// send выполняет запрос с retry на 429.
//
// Состояния: BUILD → SEND → (429 и попытки остались) → WAIT → BUILD ...
// Всё остальное — терминально: успех, ошибка транспорта, ошибка API.
func (c *Client) send(ctx context.Context, r *request) (map[string]any, error) {
	policy := newRetryPolicy()
	logger := c.logger.With("method", r.method, "path", r.path)
	attempt := 0

	operation := func() (map[string]any, error) {
		httpReq, err := r.build(ctx, c.baseURL, c.headers)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
		}

		logger.Debug("sending request", "attempt", attempt)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, backoff.Permanent(fmt.Errorf("%w: %s %s: %v", ErrNetwork, r.method, r.path, err))
		}
		defer resp.Body.Close()

		c.metrics.observeResponse(r.method, resp.StatusCode)
		logger.Debug("received response", "status", resp.StatusCode)

		result, err := decodeResponse(resp)
		if resp.StatusCode == http.StatusTooManyRequests {
			// Ошибка 429 остаётся retryable; если попытки кончатся,
			// наружу уйдёт именно она.
			policy.retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
			return nil, err
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return result, nil
	}

	notify := func(_ error, wait time.Duration) {
		attempt++
		c.metrics.observeRetry(r.method)
		logger.Warn("rate limited (429), retrying",
			"wait_ms", wait.Milliseconds(),
			"attempt", attempt,
			"max_retries", MaxRetries,
		)
	}

	return backoff.RetryNotifyWithTimerAndData(
		operation,
		backoff.WithContext(policy, ctx),
		notify,
		c.newTimer(),
	)
}
