package monitor

import "time"

type Status struct {
	Store     bool      `json:"store"`
	Cache     bool      `json:"cache"`
	Feed      bool      `json:"feed"`
	Products  int       `json:"products"`
	LastFetch time.Time `json:"last_fetch,omitempty"`
	LastCheck time.Time `json:"last_check"`
}
