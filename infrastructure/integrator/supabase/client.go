package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

const defaultTimeout = 30 * time.Second

// APIError é o corpo de erro devolvido pelo PostgREST
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("supabase: status %d", e.StatusCode)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.StatusCode, e.Message)
}

// RecordClient grava e lê registros pela API REST do Supabase (PostgREST)
type RecordClient struct {
	BaseURL    string
	APIKey     string
	Table      string
	HTTPClient *http.Client
}

func NewRecordClient(cfg *config.Config) *RecordClient {
	return &RecordClient{
		BaseURL:    strings.TrimRight(cfg.Storage.SupabaseURL, "/"),
		APIKey:     cfg.Storage.SupabaseKey,
		Table:      cfg.Storage.TableName,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *RecordClient) tableURL(query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.BaseURL, c.Table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *RecordClient) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *RecordClient) send(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	return body, nil
}

// Insert grava o lote em uma única requisição; cada registro vira uma linha nova
func (c *RecordClient) Insert(ctx context.Context, records []*domain.StoredRecord) error {
	if len(records) == 0 {
		return nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("supabase: encode records: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	_, err = c.send(req)
	return err
}

func (c *RecordClient) GetByID(ctx context.Context, id string) (*domain.StoredRecord, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	records, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return records[0], nil
}

func (c *RecordClient) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.StoredRecord, error) {
	query := url.Values{}
	query.Set("select", "*")
	if filter.DataType != "" {
		query.Set("data_type", "eq."+string(filter.DataType))
	}
	if filter.Username != "" {
		query.Set("username", "eq."+filter.Username)
	}
	if filter.Hashtag != "" {
		query.Set("hashtag", "eq."+filter.Hashtag)
	}
	if filter.Since != nil {
		query.Add("fetched_at", "gte."+filter.Since.UTC().Format(time.RFC3339))
	}
	if filter.Until != nil {
		query.Add("fetched_at", "lte."+filter.Until.UTC().Format(time.RFC3339))
	}
	query.Set("order", "fetched_at.desc")
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	return c.fetch(ctx, query)
}

func (c *RecordClient) fetch(ctx context.Context, query url.Values) ([]*domain.StoredRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(query), nil)
	if err != nil {
		return nil, err
	}

	body, err := c.send(req)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.StoredRecord, 0)
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("supabase: decode records: %w", err)
	}

	return records, nil
}
