package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/sony/gobreaker"
)

const (
	DefaultAPIURL = "https://api.airtable.com"
	maxPageSize   = 100
)

// Config holds the connection settings for one Airtable base.
type Config struct {
	APIURL      string
	Token       string
	BaseID      string
	Timeout     time.Duration // per call; 0 disables
	MaxFailures uint32        // consecutive failures before the breaker opens
	OpenTimeout time.Duration // how long the breaker stays open
}

// Client is a RecordStore backed by the Airtable REST API.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for breaker state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates an Airtable client. Token and BaseID are required.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Token == "" || cfg.BaseID == "" {
		return nil, fmt.Errorf("%w: airtable token and base ID are required", apperrors.ErrValidation)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	c := &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "airtable-" + cfg.BaseID,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Answers about the data are not outages.
			return err == nil ||
				errors.Is(err, apperrors.ErrNotFound) ||
				errors.Is(err, apperrors.ErrValidation) ||
				errors.Is(err, apperrors.ErrConflict) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.logger.Warn("Record store circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c, nil
}

var _ portsrepo.RecordStore = (*Client)(nil)

type recordDTO struct {
	ID          string          `json:"id"`
	CreatedTime time.Time       `json:"createdTime"`
	Fields      json.RawMessage `json:"fields"`
}

type listResponse struct {
	Records []recordDTO `json:"records"`
	Offset  string      `json:"offset"`
}

type writeRequest struct {
	Fields models.Fields `json:"fields"`
}

func (d recordDTO) toModel() (*models.Record, error) {
	fields := models.Fields{}
	if len(d.Fields) > 0 {
		decoded, err := models.DecodeFields(d.Fields)
		if err != nil {
			return nil, err
		}
		fields = decoded
	}
	return &models.Record{ID: d.ID, CreatedTime: d.CreatedTime, Fields: fields}, nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/v0/%s/%s", c.cfg.APIURL, url.PathEscape(c.cfg.BaseID), url.PathEscape(table))
}

func (c *Client) recordURL(table, recordID string) string {
	return c.tableURL(table) + "/" + url.PathEscape(recordID)
}

// do runs one HTTP exchange through the breaker and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", apperrors.ErrValidation, err)
		}
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, decodeStatusError(resp.StatusCode, respBody)
		}
		if out != nil {
			dec := json.NewDecoder(bytes.NewReader(respBody))
			dec.UseNumber()
			if err := dec.Decode(out); err != nil {
				return nil, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return nil, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return err
}

// writeErr classifies a failed write. Data answers keep their sentinel; anything else is a persistence failure.
func writeErr(err error, action string) error {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", action, err)
	}
	return fmt.Errorf("%w: %s: %w", apperrors.ErrPersistence, action, err)
}

func (c *Client) listURL(table string, q models.Query, pageSize int, offset string) (string, error) {
	params := url.Values{}
	formula, err := RenderFormula(q.Filter)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if formula != "" {
		params.Set("filterByFormula", formula)
	}
	for i, s := range q.Sort {
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		dir := s.Direction
		if dir == "" {
			dir = models.Asc
		}
		params.Set(fmt.Sprintf("sort[%d][direction]", i), string(dir))
	}
	if q.Limit > 0 {
		params.Set("maxRecords", strconv.Itoa(q.Limit))
	}
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}
	if offset != "" {
		params.Set("offset", offset)
	}
	u := c.tableURL(table)
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u, nil
}

// QueryPage fetches a single page.
func (c *Client) QueryPage(ctx context.Context, table string, q models.Query) (*models.Page, error) {
	pageSize := q.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	u, err := c.listURL(table, q, pageSize, q.Offset)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	page := &models.Page{Records: make([]models.Record, 0, len(resp.Records)), Offset: resp.Offset}
	for _, r := range resp.Records {
		rec, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", r.ID, err)
		}
		page.Records = append(page.Records, *rec)
	}
	return page, nil
}

// Query follows offsets until every matching record (up to q.Limit) has been read.
func (c *Client) Query(ctx context.Context, table string, q models.Query) ([]models.Record, error) {
	out := make([]models.Record, 0)
	pageQuery := q
	pageQuery.Offset = ""
	for {
		page, err := c.QueryPage(ctx, table, pageQuery)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if q.Limit > 0 && len(out) >= q.Limit {
			return out[:q.Limit], nil
		}
		if page.Offset == "" {
			return out, nil
		}
		pageQuery.Offset = page.Offset
	}
}

// Get retrieves one record by ID.
func (c *Client) Get(ctx context.Context, table, recordID string) (*models.Record, error) {
	var dto recordDTO
	if err := c.do(ctx, http.MethodGet, c.recordURL(table, recordID), nil, &dto); err != nil {
		return nil, fmt.Errorf("failed to get %s record %s: %w", table, recordID, err)
	}
	return dto.toModel()
}

// Create inserts one record.
func (c *Client) Create(ctx context.Context, table string, fields models.Fields) (*models.Record, error) {
	var dto recordDTO
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), writeRequest{Fields: fields}, &dto); err != nil {
		return nil, writeErr(err, "failed to create "+table+" record")
	}
	return dto.toModel()
}

// Update patches one record. Preconditions are verified with a read immediately before the
// write; callers serialise writers of the same record (see the locking package) so the gap
// between the read and the PATCH is not observable within the lock domain.
func (c *Client) Update(ctx context.Context, table, recordID string, fields models.Fields, conds ...models.Precondition) (*models.Record, error) {
	if len(conds) > 0 {
		current, err := c.Get(ctx, table, recordID)
		if err != nil {
			return nil, err
		}
		for _, cond := range conds {
			if !cond.Holds(current.Fields[cond.Field]) {
				return nil, fmt.Errorf("%w: field %q of record %s no longer holds %v", apperrors.ErrConflict, cond.Field, recordID, cond.Equals)
			}
		}
	}

	var dto recordDTO
	if err := c.do(ctx, http.MethodPatch, c.recordURL(table, recordID), writeRequest{Fields: fields}, &dto); err != nil {
		return nil, writeErr(err, "failed to update "+table+" record "+recordID)
	}
	return dto.toModel()
}

// Ping checks the token against the whoami endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, c.cfg.APIURL+"/v0/meta/whoami", nil, nil); err != nil {
		return fmt.Errorf("airtable ping failed: %w", err)
	}
	return nil
}
