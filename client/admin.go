package client

import "context"

// AdminService handles administrative operations.
type AdminService struct {
	c *Client
}

// loadSamplesResponse reports how many sample movies were inserted.
type loadSamplesResponse struct {
	Loaded int `json:"loaded"`
}

// LoadSamples seeds the catalog with the built-in sample movies.
func (s *AdminService) LoadSamples(ctx context.Context) (int, error) {
	var resp loadSamplesResponse
	if err := s.c.post(ctx, "/api/v1/admin/load-samples", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Loaded, nil
}
