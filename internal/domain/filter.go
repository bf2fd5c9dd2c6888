package domain

// StatusAll disables status filtering.
const StatusAll = "all"

// Filter holds the dashboard's client-side order filters. Zero values mean
// the predicate is inactive. Filters apply to the currently loaded page only,
// never to the backend query.
type Filter struct {
	ID        int64  `json:"id,omitempty"`
	StartDate string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"endDate,omitempty"`   // YYYY-MM-DD
	Status    string `json:"status,omitempty"`    // display tag or "all"
}

// Stats are derived over the currently loaded page, not the whole dataset.
type Stats struct {
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
