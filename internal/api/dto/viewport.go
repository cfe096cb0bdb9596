package dto

// ViewportUpdateRequest uses pointer coordinates so an absent field is
// distinguishable from a legitimate zero (the equator and the prime
// meridian are valid bounds).
type ViewportUpdateRequest struct {
	UserID string   `json:"user_id"`
	MinLat *float64 `json:"min_lat"`
	MaxLat *float64 `json:"max_lat"`
	MinLon *float64 `json:"min_lon"`
	MaxLon *float64 `json:"max_lon"`
}

func (r ViewportUpdateRequest) Complete() bool {
	return r.UserID != "" && r.MinLat != nil && r.MaxLat != nil && r.MinLon != nil && r.MaxLon != nil
}

type ViewportUpdateResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
