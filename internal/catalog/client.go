// Package catalog 远端只读商品目录客户端。
package catalog

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
)

var (
	ErrInvalidURL      = errors.New("catalog url invalid")
	ErrInvalidResponse = errors.New("catalog response invalid")
	ErrServerError     = errors.New("catalog server error")
	ErrDecodeFailed    = errors.New("catalog decode failed")
)

const (
	DefaultBaseURL  = "https://fakestoreapi.com"
	productsPath    = "/products"
	defaultTimeout  = 30 * time.Second
	maxErrorBodyLen = 64 << 10
)

// ServerError 非 2xx 响应
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", ErrServerError.Error(), e.Message)
}

// Is 支持 errors.Is(err, ErrServerError)
func (e *ServerError) Is(target error) bool {
	return target == ErrServerError
}

// apiErrorResponse 结构化错误响应体
type apiErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fetcher 商品目录拉取接口
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Result 异步拉取结果
type Result struct {
	Products []Product
	Err      error
}

// Client 目录客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option 客户端选项
type Option func(*Client)

// WithHTTPClient 替换底层 HTTP 客户端
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient 创建目录客户端，timeout<=0 时使用 30 秒
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// BaseURL 目录地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProductsURL 商品列表地址
func (c *Client) ProductsURL() (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("%w: base url is empty", ErrInvalidURL)
	}
	parsed, err := url.Parse(c.baseURL + productsPath)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, c.baseURL)
	}
	return parsed.String(), nil
}

// FetchProducts 拉取完整商品列表，不重试、不分页
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint, err := c.ProductsURL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request failed", ErrInvalidURL)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, ctxErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newServerError(resp)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// FetchProductsAsync 一次性结果通道：投递恰好一个 Result 后关闭
func (c *Client) FetchProductsAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		products, err := c.FetchProducts(ctx)
		out <- Result{Products: products, Err: err}
	}()
	return out
}

func newServerError(resp *http.Response) *ServerError {
	serverErr := &ServerError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if err != nil || len(body) == 0 {
		return serverErr
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && strings.TrimSpace(apiErr.Message) != "" {
		serverErr.Message = apiErr.Message
	}
	return serverErr
}
