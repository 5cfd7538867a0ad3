package domain

import "github.com/google/uuid"

// Activity is a single scheduled item within a trip. StartDate and StartTime
// are opaque strings ("2024-05-01", "09:00"); the server never parses them.
type Activity struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	StartTime string    `json:"startTime"`
	Location  string    `json:"location"`
	AddOns    AddOns    `json:"addOns"`
}

// AddOns holds the optional extras attached to an activity.
type AddOns struct {
	Comments      string   `json:"comments"`
	TicketNo      string   `json:"ticketNo"`
	TicketUploads []string `json:"ticketUploads"`
}
