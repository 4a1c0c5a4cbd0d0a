package client

import (
	"context"
	"net/url"
	"strconv"
)

// RecommendationService handles recommendation queries.
type RecommendationService struct {
	c *Client
}

// recommendationsResponse wraps the recommendation list.
type recommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// Get returns up to limit recommendations for the user. A limit of 0 uses
// the server default.
func (s *RecommendationService) Get(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	params := url.Values{"user_id": {userID}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp recommendationsResponse
	if err := s.c.get(ctx, "/api/v1/recommendations", params, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}
