package domain

import "time"

// Thing is the base shape shared by terms, licenses and keywords.
type Thing struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	SameAs      *string `json:"sameAs,omitempty"`
}

// Term is a controlled vocabulary term (type, subject, material, ...).
type Term = Thing

// AgentType discriminates persons from organizations.
type AgentType string

// Agent variants.
const (
	AgentPerson       AgentType = "Person"
	AgentOrganization AgentType = "Organization"
	AgentUnknown      AgentType = "Unknown"
)

// Agent is a person or organization referenced by another record.
type Agent struct {
	Thing
	Type AgentType `json:"type"`
}

// Place is a location with an optional parent chain (city -> country).
type Place struct {
	Thing
	IsPartOf *Place `json:"isPartOf,omitempty"`
}

// TimeSpan holds the closure of a partial date expression.
// StartDate is the earliest instant of the start expression and EndDate the
// latest instant of the end expression.
type TimeSpan struct {
	ID        string     `json:"id"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Image is a digital representation of a heritage object.
type Image struct {
	ID         string  `json:"id"`
	ContentURL *string `json:"contentUrl,omitempty"`
	License    *Thing  `json:"license,omitempty"`
}
