package domain

import "time"

// Wire values of the backend's order status enum. The backend's later model
// revision added CONFIRMED, SHIPPED and DELIVERED; those are accepted on input
// but render through the unknown-status default below.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// Display tags shown in the console UI.
const (
	TagPending    = "pending"
	TagProcessing = "processing"
	TagCompleted  = "completed"
	TagCanceled   = "canceled"
)

var statusTags = map[string]string{
	StatusPending:    TagPending,
	StatusProcessing: TagProcessing,
	StatusCompleted:  TagCompleted,
	StatusCancelled:  TagCanceled,
}

var tagStatuses = map[string]string{
	TagPending:    StatusPending,
	TagProcessing: StatusProcessing,
	TagCompleted:  StatusCompleted,
	TagCanceled:   StatusCancelled,
}

// StatusTag maps a backend status enum value to its display tag. Unknown
// values fall back to the pending tag.
func StatusTag(wire string) string {
	if tag, ok := statusTags[wire]; ok {
		return tag
	}
	return TagPending
}

// TagStatus maps a display tag back to the wire enum, reporting whether the
// tag is known.
func TagStatus(tag string) (string, bool) {
	s, ok := tagStatuses[tag]
	return s, ok
}

// KnownStatus reports whether wire is one of the canonical enum values.
func KnownStatus(wire string) bool {
	_, ok := statusTags[wire]
	return ok
}

// Order is the console's view of a backend order.
type Order struct {
	ID        int64       `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is one line of an order as displayed in the console.
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
