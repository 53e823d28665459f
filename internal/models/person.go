package models

// Person is a character from the catalogue. Only Name is mandatory.
type Person struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// PersonFields carries person attributes for create and partial update requests.
type PersonFields struct {
	Name      *string `json:"name"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}
