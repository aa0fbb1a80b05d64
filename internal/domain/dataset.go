package domain

import "time"

// Dataset is a published collection of records from one data provider.
type Dataset struct {
	Thing
	Publisher     *Agent     `json:"publisher,omitempty"`
	License       *Thing     `json:"license,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
	DateCreated   *time.Time `json:"dateCreated,omitempty"`
	DateModified  *time.Time `json:"dateModified,omitempty"`
	DatePublished *time.Time `json:"datePublished,omitempty"`
}
