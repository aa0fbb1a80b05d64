package domain

// Person is a constituent: someone who made, owned or handled objects.
type Person struct {
	ID            string    `json:"id"`
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Nationalities []Term    `json:"nationalities,omitempty"`
	BirthPlace    *Place    `json:"birthPlace,omitempty"`
	DateOfBirth   *TimeSpan `json:"dateOfBirth,omitempty"`
	DeathPlace    *Place    `json:"deathPlace,omitempty"`
	DateOfDeath   *TimeSpan `json:"dateOfDeath,omitempty"`
	IsPartOf      *Dataset  `json:"isPartOf,omitempty"`
}
