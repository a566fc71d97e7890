package pipedriveclient

import (
	"net/http"
	"time"

	"github.com/jmfarina/sales-ops-api/internal/config"
)

type Client interface {
	ListWonDeals(params ListWonDealsParams) ([]map[string]any, error)
}

type PipedriveClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PipedriveClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
