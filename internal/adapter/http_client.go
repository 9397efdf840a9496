// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/protonpass/ios-pass-sub006/models"
)

// HTTPClientConfig configures the REST implementation of
// [RemoteDataSource].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteDataSource struct {
	client *resty.Client

	mu     sync.RWMutex
	tokens map[string]string // account id -> session token
}

// NewHTTPRemoteDataSource constructs the REST [RemoteDataSource].
func NewHTTPRemoteDataSource(cfg HTTPClientConfig) RemoteDataSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteDataSource{client: cli, tokens: make(map[string]string)}
}

func (h *httpRemoteDataSource) SetSessionToken(accountID, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens[accountID] = strings.TrimSpace(token)
}

func (h *httpRemoteDataSource) token(accountID string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens[accountID]
}

// request builds a resty request with the account's session credentials
// attached.
func (h *httpRemoteDataSource) request(ctx context.Context, accountID string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Account-ID", accountID).
		SetAuthToken(h.token(accountID))
}

// get performs a GET and decodes the success envelope into result. Any
// transport failure maps to [ErrNetworkUnavailable]; any non-2xx response
// maps through mapAPIError.
func (h *httpRemoteDataSource) get(ctx context.Context, accountID, path string, query map[string]string, result any) error {
	req := h.request(ctx, accountID)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Get(path)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}

	return mapAPIError(resp)
}

func (h *httpRemoteDataSource) GetShares(ctx context.Context, accountID string) ([]models.Share, error) {
	var result struct {
		Shares []models.Share `json:"Shares"`
	}
	if err := h.get(ctx, accountID, "/pass/v1/share", nil, &result); err != nil {
		return nil, fmt.Errorf("get shares: %w", err)
	}
	return result.Shares, nil
}

func (h *httpRemoteDataSource) GetShareKeys(ctx context.Context, accountID, shareID string) ([]models.EncryptedShareKey, error) {
	var result struct {
		ShareKeys struct {
			Keys []models.EncryptedShareKey `json:"Keys"`
		} `json:"ShareKeys"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/key", shareID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return nil, fmt.Errorf("get share keys %s: %w", shareID, err)
	}

	keys := result.ShareKeys.Keys
	for i := range keys {
		keys[i].ShareID = shareID
	}
	return keys, nil
}

func (h *httpRemoteDataSource) GetLatestItemKey(ctx context.Context, accountID, shareID, itemID string) (models.ItemKeyDescriptor, error) {
	var result struct {
		Key models.ItemKeyDescriptor `json:"Key"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/item/%s/key/latest", shareID, itemID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return models.ItemKeyDescriptor{}, fmt.Errorf("get latest item key %s/%s: %w", shareID, itemID, err)
	}
	return result.Key, nil
}

func (h *httpRemoteDataSource) GetShareLastEventID(ctx context.Context, accountID, shareID string) (string, error) {
	var result struct {
		EventID string `json:"EventID"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/event", shareID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return "", fmt.Errorf("get last event id %s: %w", shareID, err)
	}
	return result.EventID, nil
}

func (h *httpRemoteDataSource) GetShareEvents(ctx context.Context, accountID, shareID, lastEventID string) (models.ShareEvents, error) {
	var result struct {
		Events models.ShareEvents `json:"Events"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/event/%s", shareID, lastEventID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return models.ShareEvents{}, fmt.Errorf("get share events %s: %w", shareID, err)
	}
	return result.Events, nil
}

func (h *httpRemoteDataSource) GetUserEvents(ctx context.Context, accountID, lastEventID string) (models.UserEvents, error) {
	var result struct {
		Events models.UserEvents `json:"Events"`
	}
	path := fmt.Sprintf("/pass/v1/user/event/%s", lastEventID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return models.UserEvents{}, fmt.Errorf("get user events: %w", err)
	}
	return result.Events, nil
}

func (h *httpRemoteDataSource) GetShareItems(ctx context.Context, accountID, shareID string) ([]models.ItemEvent, error) {
	var result struct {
		Items []models.ItemEvent `json:"Items"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/item", shareID)
	if err := h.get(ctx, accountID, path, nil, &result); err != nil {
		return nil, fmt.Errorf("get share items %s: %w", shareID, err)
	}
	return result.Items, nil
}

func (h *httpRemoteDataSource) GetItem(ctx context.Context, accountID, shareID, itemID, eventToken string) (models.ItemEvent, error) {
	var result struct {
		Item models.ItemEvent `json:"Item"`
	}
	path := fmt.Sprintf("/pass/v1/share/%s/item/%s", shareID, itemID)
	query := map[string]string{"EventToken": eventToken}
	if err := h.get(ctx, accountID, path, query, &result); err != nil {
		return models.ItemEvent{}, fmt.Errorf("get item %s/%s: %w", shareID, itemID, err)
	}
	return result.Item, nil
}

func (h *httpRemoteDataSource) GetAccess(ctx context.Context, accountID string) (models.AccessSettings, error) {
	var result struct {
		Access models.AccessSettings `json:"Access"`
	}
	if err := h.get(ctx, accountID, "/pass/v1/user/access", nil, &result); err != nil {
		return models.AccessSettings{}, fmt.Errorf("get access: %w", err)
	}
	return result.Access, nil
}

func (h *httpRemoteDataSource) GetPendingAliases(ctx context.Context, accountID string, sinceToken *string, pageSize int) (models.PaginatedPendingAliases, error) {
	var result struct {
		Pending models.PaginatedPendingAliases `json:"Pending"`
	}
	query := map[string]string{"PageSize": strconv.Itoa(pageSize)}
	if sinceToken != nil {
		query["Since"] = *sinceToken
	}
	if err := h.get(ctx, accountID, "/pass/v1/alias/pending", query, &result); err != nil {
		return models.PaginatedPendingAliases{}, fmt.Errorf("get pending aliases: %w", err)
	}
	return result.Pending, nil
}

func (h *httpRemoteDataSource) GetPendingAliasNotes(ctx context.Context, accountID string, sinceToken *string, pageSize int) (models.PaginatedAliasNotes, error) {
	var result struct {
		Notes models.PaginatedAliasNotes `json:"Notes"`
	}
	query := map[string]string{"PageSize": strconv.Itoa(pageSize)}
	if sinceToken != nil {
		query["Since"] = *sinceToken
	}
	if err := h.get(ctx, accountID, "/pass/v1/alias/note/pending", query, &result); err != nil {
		return models.PaginatedAliasNotes{}, fmt.Errorf("get pending alias notes: %w", err)
	}
	return result.Notes, nil
}
