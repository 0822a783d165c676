package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/1ns0mn1a7/seller-apis/core/utils"
)

const offerPageLimit = 200

type offerMappingsResponse struct {
	Result offerMappingsResult `json:"result"`
}

type offerMappingsResult struct {
	OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
	Paging              paging              `json:"paging"`
}

type offerMappingEntry struct {
	Offer struct {
		ShopSku any `json:"shopSku"`
	} `json:"offer"`
}

type paging struct {
	NextPageToken string `json:"nextPageToken"`
}

// OfferIDs lists the campaign's full offer-identifier universe (shop
// SKUs), following page-token pagination until no token remains.
func (c *Client) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		query := url.Values{
			"page_token": {pageToken},
			"limit":      {strconv.Itoa(offerPageLimit)},
		}
		path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries", campaignID)

		var resp offerMappingsResponse
		if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
			return nil, err
		}
		for _, entry := range resp.Result.OfferMappingEntries {
			ids = append(ids, utils.ToString(entry.Offer.ShopSku))
		}
		pageToken = resp.Result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return ids, nil
}
