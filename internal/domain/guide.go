package domain

// Citation is a bibliographic reference made by a research guide.
type Citation struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// ResearchGuide is an editorial text that helps researchers navigate the collections.
// HasParts and SeeAlso are expanded to a bounded depth.
type ResearchGuide struct {
	ID               string          `json:"id"`
	Name             *string         `json:"name,omitempty"`
	AlternateName    *string         `json:"alternateName,omitempty"`
	Abstract         *string         `json:"abstract,omitempty"`
	Text             *string         `json:"text,omitempty"`
	EncodingFormat   *string         `json:"encodingFormat,omitempty"`
	Keywords         []Term          `json:"keywords,omitempty"`
	ContentLocations []Place         `json:"contentLocations,omitempty"`
	Citations        []Citation      `json:"citations,omitempty"`
	HasParts         []ResearchGuide `json:"hasParts,omitempty"`
	SeeAlso          []ResearchGuide `json:"seeAlso,omitempty"`
}
