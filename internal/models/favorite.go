package models

// TargetKind names the entity a favorite points at.
type TargetKind string

const (
	TargetPlanet TargetKind = "planet"
	TargetPeople TargetKind = "people"
)

// Valid reports whether k is a known favorite target.
func (k TargetKind) Valid() bool {
	return k == TargetPlanet || k == TargetPeople
}

// Favorite links a user to either a planet or a person.
// Exactly one of PlanetID and PeopleID is set.
type Favorite struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PlanetID *int64 `json:"planet_id"`
	PeopleID *int64 `json:"people_id"`
}

// FavoriteRequest identifies the acting user of a favorite mutation.
type FavoriteRequest struct {
	UserID *int64 `json:"user_id"`
}
