package models

// DefaultPlanetName is used when a planet is created without a name.
const DefaultPlanetName = "Tatooine"

// Planet is a world from the catalogue.
type Planet struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Terrain        string `json:"terrain"`
	Population     string `json:"population"`
	OrbitalPeriod  string `json:"orbital_period"`
	RotationPeriod string `json:"rotation_period"`
	Diameter       string `json:"diameter"`
}

// PlanetFields carries planet attributes for create and partial update requests.
type PlanetFields struct {
	Name           *string `json:"name"`
	Climate        *string `json:"climate"`
	Terrain        *string `json:"terrain"`
	Population     *string `json:"population"`
	OrbitalPeriod  *string `json:"orbital_period"`
	RotationPeriod *string `json:"rotation_period"`
	Diameter       *string `json:"diameter"`
}
