package market

// Config holds credentials and campaign contexts for the Yandex Market
// partner API. The shop runs two campaigns, FBS and DBS, each with its
// own warehouse; both are synced in one run.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// Token is the OAuth bearer token.
	Token string `mapstructure:"token" validate:"required"`
	// FBSCampaignID identifies the FBS campaign.
	FBSCampaignID string `mapstructure:"fbs_campaign_id" validate:"required"`
	// FBSWarehouseID is the warehouse bound to the FBS campaign.
	FBSWarehouseID string `mapstructure:"fbs_warehouse_id" validate:"required"`
	// DBSCampaignID identifies the DBS campaign.
	DBSCampaignID string `mapstructure:"dbs_campaign_id" validate:"required"`
	// DBSWarehouseID is the warehouse bound to the DBS campaign.
	DBSWarehouseID string `mapstructure:"dbs_warehouse_id" validate:"required"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Campaign is one marketplace campaign context: its identifier and the
// warehouse stock updates are booked against.
type Campaign struct {
	Name        string
	ID          string
	WarehouseID string
}

// Campaigns returns the configured campaign contexts in sync order.
func (c Config) Campaigns() []Campaign {
	return []Campaign{
		{Name: "fbs", ID: c.FBSCampaignID, WarehouseID: c.FBSWarehouseID},
		{Name: "dbs", ID: c.DBSCampaignID, WarehouseID: c.DBSWarehouseID},
	}
}
