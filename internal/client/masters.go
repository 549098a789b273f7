package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// PartyListParams are the filters accepted by ListParties.
type PartyListParams struct {
	Page   int
	Size   int
	Search string
	// Type is "Supplier" or "Buyer". Empty means both.
	Type string
}

// ListParties fetches one page of parties.
func (c *Client) ListParties(ctx context.Context, params PartyListParams) (*pagination.Result[entity.Party], error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}

	path := "/api/v1/parties"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result pagination.Result[entity.Party]
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode party list: %w", err)
	}
	return &result, nil
}

// CreateParty creates a party master record.
func (c *Client) CreateParty(ctx context.Context, payload *request.CreatePartyRequest) (*entity.Party, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/parties", payload)
	if err != nil {
		return nil, err
	}

	var party entity.Party
	if err := json.Unmarshal(env.Data, &party); err != nil {
		return nil, fmt.Errorf("decode party: %w", err)
	}
	return &party, nil
}

// DeleteParty deletes a party master record.
func (c *Client) DeleteParty(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/parties/"+id, nil)
	return err
}

// ListCategories fetches all categories with their subcategories.
func (c *Client) ListCategories(ctx context.Context, search string) ([]entity.Category, error) {
	path := "/api/v1/categories"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var categories []entity.Category
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		return nil, fmt.Errorf("decode category list: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category with its subcategories.
func (c *Client) CreateCategory(ctx context.Context, payload *request.CreateCategoryRequest) (*entity.Category, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/categories", payload)
	if err != nil {
		return nil, err
	}

	var category entity.Category
	if err := json.Unmarshal(env.Data, &category); err != nil {
		return nil, fmt.Errorf("decode category: %w", err)
	}
	return &category, nil
}

// ItemListParams are the filters accepted by ListItems.
type ItemListParams struct {
	Page       int
	Size       int
	Search     string
	CategoryID string
}

// ListItems fetches one page of item master records.
func (c *Client) ListItems(ctx context.Context, params ItemListParams) (*pagination.Result[entity.Item], error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.CategoryID != "" {
		q.Set("categoryId", params.CategoryID)
	}

	path := "/api/v1/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result pagination.Result[entity.Item]
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode item list: %w", err)
	}
	return &result, nil
}
