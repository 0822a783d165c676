package ozon

import (
	"context"

	"github.com/1ns0mn1a7/seller-apis/core/utils"
)

const productListLimit = 1000

type productListRequest struct {
	Filter productListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}

type productListFilter struct {
	Visibility string `json:"visibility"`
}

type productListResponse struct {
	Result productListResult `json:"result"`
}

type productListResult struct {
	Items  []productListItem `json:"items"`
	Total  int               `json:"total"`
	LastID string            `json:"last_id"`
}

type productListItem struct {
	OfferID any `json:"offer_id"`
}

// OfferIDs lists the shop's full offer-identifier universe, following
// last_id pagination until the reported total is reached.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	var ids []string
	lastID := ""
	for {
		req := productListRequest{
			Filter: productListFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  productListLimit,
		}
		var resp productListResponse
		if err := c.post(ctx, "/v2/product/list", req, &resp); err != nil {
			return nil, err
		}
		for _, item := range resp.Result.Items {
			ids = append(ids, utils.ToString(item.OfferID))
		}
		lastID = resp.Result.LastID
		if len(ids) >= resp.Result.Total || len(resp.Result.Items) == 0 {
			break
		}
	}
	return ids, nil
}
