package domain

import "github.com/google/uuid"

// Trip is a user-owned travel plan. It owns an ordered collection of
// activities, addressed by id. DepartureDate is an opaque string supplied by
// the client; the server validates presence only, never format.
type Trip struct {
	ID            uuid.UUID  `json:"_id"`
	TripName      string     `json:"tripName"`
	DepartureDate string     `json:"departureDate"`
	Activities    []Activity `json:"activities"`
}

// Activity returns a pointer to the activity with the given id, or nil.
// The pointer aliases the trip's slice so callers can mutate in place.
func (t *Trip) Activity(id uuid.UUID) *Activity {
	for i := range t.Activities {
		if t.Activities[i].ID == id {
			return &t.Activities[i]
		}
	}
	return nil
}

// AppendActivity adds an activity to the end of the trip's collection and
// returns a pointer to the stored element.
func (t *Trip) AppendActivity(a Activity) *Activity {
	t.Activities = append(t.Activities, a)
	return &t.Activities[len(t.Activities)-1]
}

// RemoveActivity splices the activity with the given id out of the trip and
// returns its prior value. Sibling order and ids are unchanged.
// ok is false if the trip contains no such activity.
func (t *Trip) RemoveActivity(id uuid.UUID) (removed Activity, ok bool) {
	for i := range t.Activities {
		if t.Activities[i].ID == id {
			removed = t.Activities[i]
			t.Activities = append(t.Activities[:i], t.Activities[i+1:]...)
			return removed, true
		}
	}
	return Activity{}, false
}
