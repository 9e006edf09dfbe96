package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-adoption-api/internal/platform/logger"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultRetryWait = 200 * time.Millisecond
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	// RetryWait es la espera mínima entre reintentos (backoff exponencial).
	RetryWait time.Duration
	// Headers se mandan en todos los requests (p.ej. apikey).
	Headers   map[string]string
	Transport http.RoundTripper
	Logger    logger.Logger
}

// Client envuelve un retryablehttp.Client con helpers comunes para adapters.
// Solo se reintentan métodos idempotentes.
type Client struct {
	HTTP    *retryablehttp.Client
	BaseURL string
	Headers map[string]string
}

func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = DefaultRetryWait
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.MaxRetries
	rc.RetryWaitMin = opts.RetryWait
	rc.RetryWaitMax = opts.RetryWait * 10
	rc.HTTPClient.Timeout = opts.Timeout
	if opts.Transport != nil {
		rc.HTTPClient.Transport = opts.Transport
	}
	rc.CheckRetry = retryPolicy
	rc.ErrorHandler = lastResponse
	rc.Logger = nil
	if opts.Logger != nil {
		rc.Logger = leveled{log: opts.Logger.With(map[string]any{"component": "httpclient"})}
	}

	c := &Client{HTTP: rc, Headers: opts.Headers}

	if strings.TrimSpace(opts.BaseURL) != "" {
		if _, err := url.ParseRequestURI(opts.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
		c.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	return c, nil
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL (puede traer query)
// - headers: headers extra para este request (opcional)
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Retorna *HTTPError si status no es 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body []byte
	if in != nil {
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
	}

	if !idempotent(method) {
		ctx = context.WithValue(ctx, noRetryKey{}, true)
	}

	var rawBody any
	if body != nil {
		rawBody = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, rawBody)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setHeaders(req.Header, c.Headers)
	setHeaders(req.Header, headers)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := readAtMost(resp.Body, 1<<20) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

type noRetryKey struct{}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete:
		return true
	}
	return false
}

func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if skip, _ := ctx.Value(noRetryKey{}).(bool); skip {
		return false, ctx.Err()
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// lastResponse devuelve la última respuesta cuando se agotan los reintentos,
// así el caller ve el status real en vez de "giving up after N attempts".
func lastResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

func setHeaders(h http.Header, extra map[string]string) {
	for k, v := range extra {
		if strings.TrimSpace(k) == "" {
			continue
		}
		h.Set(k, v)
	}
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	return io.ReadAll(io.LimitReader(r, max))
}

// leveled adapta logger.Logger a retryablehttp.LeveledLogger.
type leveled struct {
	log logger.Logger
}

func (l leveled) Error(msg string, kv ...any) { l.log.Error(msg, kvFields(kv)) }
func (l leveled) Info(msg string, kv ...any)  { l.log.Debug(msg, kvFields(kv)) }
func (l leveled) Debug(msg string, kv ...any) { l.log.Debug(msg, kvFields(kv)) }
func (l leveled) Warn(msg string, kv ...any)  { l.log.Warn(msg, kvFields(kv)) }

func kvFields(kv []any) map[string]any {
	out := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			k = fmt.Sprint(kv[i])
		}
		out[k] = kv[i+1]
	}
	return out
}
