package domain

// HeritageObject is a human-made object held in a collection.
type HeritageObject struct {
	ID              string    `json:"id"`
	Identifier      *string   `json:"identifier,omitempty"`
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Inscriptions    []string  `json:"inscriptions,omitempty"`
	Types           []Term    `json:"types,omitempty"`
	Subjects        []Term    `json:"subjects,omitempty"`
	Materials       []Term    `json:"materials,omitempty"`
	Techniques      []Term    `json:"techniques,omitempty"`
	Creators        []Agent   `json:"creators,omitempty"`
	DateCreated     *TimeSpan `json:"dateCreated,omitempty"`
	LocationCreated *Place    `json:"locationCreated,omitempty"`
	Images          []Image   `json:"images,omitempty"`
	Owner           *Agent    `json:"owner,omitempty"`
	IsPartOf        *Dataset  `json:"isPartOf,omitempty"`
}
