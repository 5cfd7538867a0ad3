// Package domain contains the core data types for the trip planner backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
//
// User is the aggregate root: the unit of atomic persistence and the top of
// the ownership chain. Trips and activities are addressed by id, never by
// position — positional indexes are an implementation detail of the splice
// operations and never cross a method boundary.
package domain

import "github.com/google/uuid"

// User owns an ordered collection of trips. The whole document is persisted
// as one value; every mutation replaces it atomically.
type User struct {
	ID    uuid.UUID `json:"_id"`
	Trips []Trip    `json:"trips"`
}

// Trip returns a pointer to the trip with the given id, or nil if the user
// owns no such trip. The pointer aliases the user's slice so callers can
// mutate the trip in place before a save.
func (u *User) Trip(id uuid.UUID) *Trip {
	for i := range u.Trips {
		if u.Trips[i].ID == id {
			return &u.Trips[i]
		}
	}
	return nil
}

// AppendTrip adds a trip to the end of the user's collection and returns a
// pointer to the stored element.
func (u *User) AppendTrip(t Trip) *Trip {
	u.Trips = append(u.Trips, t)
	return &u.Trips[len(u.Trips)-1]
}

// RemoveTrip splices the trip with the given id out of the collection and
// returns its prior value. Sibling order and ids are unchanged.
// ok is false if the user owns no such trip.
func (u *User) RemoveTrip(id uuid.UUID) (removed Trip, ok bool) {
	for i := range u.Trips {
		if u.Trips[i].ID == id {
			removed = u.Trips[i]
			u.Trips = append(u.Trips[:i], u.Trips[i+1:]...)
			return removed, true
		}
	}
	return Trip{}, false
}

// FindActivity locates an activity by id across all of the user's trips,
// returning the owning trip and the activity. Trips are scanned in order and
// the first match wins; ids are generated as UUIDs so duplicates across
// trips indicate a data-integrity bug, not a supported case.
func (u *User) FindActivity(id uuid.UUID) (*Trip, *Activity) {
	for i := range u.Trips {
		if a := u.Trips[i].Activity(id); a != nil {
			return &u.Trips[i], a
		}
	}
	return nil, nil
}
