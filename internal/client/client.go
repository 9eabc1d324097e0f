// Package client consome a API de vendas do mesmo jeito que o dashboard web
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultBaseURL = "http://localhost:6001"

// API é o subconjunto da API usado pelo dashboard
type API interface {
	GetSales(ctx context.Context) ([]domain.Sale, error)
	GetDateRange(ctx context.Context, state string) (*domain.DateRange, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// ResponseError é uma resposta de erro da API, no formato {code, message}
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

func NewClient(baseURL string) (*Client, error) {
	endpoint, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "client: parse base url")
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, errors.Errorf("client: invalid base url %q", baseURL)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: endpoint,
	}, nil
}

func (c *Client) GetSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := c.get(ctx, c.baseURL.JoinPath("api", "sales"), &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) GetStates(ctx context.Context) ([]string, error) {
	var states []string
	if err := c.get(ctx, c.baseURL.JoinPath("api", "states"), &states); err != nil {
		return nil, err
	}
	return states, nil
}

// GetDateRange devolve domain.ErrStateNotFound quando a API responde 404
func (c *Client) GetDateRange(ctx context.Context, state string) (*domain.DateRange, error) {
	if state == "" {
		return nil, domain.ErrStateRequired
	}

	var dateRange domain.DateRange
	err := c.get(ctx, c.baseURL.JoinPath("api", "dates", url.PathEscape(state)), &dateRange)
	if err != nil {
		var respErr *ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return nil, errors.Wrapf(domain.ErrStateNotFound, "state %q", state)
		}
		return nil, err
	}

	return &dateRange, nil
}

type TotalResponse struct {
	State string  `json:"state"`
	Field string  `json:"field"`
	Total float64 `json:"total"`
}

func (c *Client) GetTotal(ctx context.Context, state, field string) (*TotalResponse, error) {
	endpoint := c.baseURL.JoinPath("api", "totals", url.PathEscape(state))
	query := endpoint.Query()
	query.Set("field", field)
	endpoint.RawQuery = query.Encode()

	var total TotalResponse
	if err := c.get(ctx, endpoint, &total); err != nil {
		return nil, err
	}
	return &total, nil
}

func (c *Client) GetSummary(ctx context.Context, selection domain.FilterSelection) (*domain.SalesSummary, error) {
	endpoint := c.baseURL.JoinPath("api", "summary")
	query := endpoint.Query()
	query.Set("state", selection.State())
	if !selection.From().IsZero() {
		query.Set("from", selection.From().String())
	}
	if !selection.To().IsZero() {
		query.Set("to", selection.To().String())
	}
	endpoint.RawQuery = query.Encode()

	var summary struct {
		Totals domain.SalesTotals `json:"totals"`
	}
	if err := c.get(ctx, endpoint, &summary); err != nil {
		return nil, err
	}

	return &domain.SalesSummary{Selection: selection, Totals: summary.Totals}, nil
}

func (c *Client) GetRanking(ctx context.Context) (*domain.StateRankingSnapshot, error) {
	var snapshot domain.StateRankingSnapshot
	if err := c.get(ctx, c.baseURL.JoinPath("api", "ranking"), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *Client) get(ctx context.Context, endpoint *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "client: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "client: GET %s", endpoint.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "client: decode %s", endpoint.Path)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	respErr := &ResponseError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return respErr
	}

	var apiErr apiErrors.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		respErr.Code = apiErr.Code
		respErr.Message = apiErr.Message
	}

	return respErr
}
