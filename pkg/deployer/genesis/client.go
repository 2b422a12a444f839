package genesis

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const genesisPath = "/api/light_client_genesis"

// Client fetches the light client genesis state from the orchestrator, which
// knows the initial stake table.
type Client struct {
	http *resty.Client
}

func NewClient(orchestratorURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(orchestratorURL),
	}
}

// Fetch performs a single request for the genesis state.
func (c *Client) Fetch(ctx context.Context) (*State, error) {
	state := new(State)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(state).
		Get(genesisPath)
	if err != nil {
		return nil, fmt.Errorf("requesting light client genesis from orchestrator: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("orchestrator returned status %s for light client genesis", resp.Status())
	}
	return state, nil
}
