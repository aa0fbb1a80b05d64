// Package profile describes how each searchable entity is laid out in the
// search index: its document type, facet fields and sort fields.
package profile

import "github.com/kailas-cloud/heritagegraph/internal/domain/search/sorting"

// Index fields shared by every document.
const (
	FieldID    = "@id"
	FieldType  = "@type"
	FieldScore = "_score"
)

// Category is a facet: a filter name exposed to callers and the index field
// it aggregates and filters on.
type Category struct {
	Name  string
	Field string
}

// Profile is the search layout of one entity family.
type Profile struct {
	Entity       string
	DocumentType string
	Categories   []Category
	// Sorts maps every accepted sort key to its index field.
	Sorts       map[sorting.Key]string
	DefaultSort sorting.Key
	// TextFields are searched by the free-text query.
	TextFields []string
}

// Category looks up a facet by name.
func (p Profile) Category(name string) (Category, bool) {
	for _, c := range p.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// SortField returns the index field for key.
func (p Profile) SortField(key sorting.Key) (string, bool) {
	f, ok := p.Sorts[key]
	return f, ok
}

// Objects is the heritage object profile.
var Objects = Profile{
	Entity:       "objects",
	DocumentType: "HeritageObject",
	Categories: []Category{
		{Name: "owners", Field: "owner.name"},
		{Name: "types", Field: "types.name"},
		{Name: "subjects", Field: "subjects.name"},
		{Name: "locations", Field: "locationCreated.name"},
		{Name: "materials", Field: "materials.name"},
		{Name: "techniques", Field: "techniques.name"},
		{Name: "creators", Field: "creators.name"},
		{Name: "publishers", Field: "isPartOf.publisher.name"},
	},
	Sorts: map[sorting.Key]string{
		sorting.Relevance: FieldScore,
		sorting.Name:      "name.keyword",
	},
	DefaultSort: sorting.Relevance,
	TextFields:  []string{"name", "description", "inscriptions", "identifier"},
}

// Persons is the constituent profile.
var Persons = Profile{
	Entity:       "persons",
	DocumentType: "Person",
	Categories: []Category{
		{Name: "birthPlaces", Field: "birthPlace.name"},
		{Name: "deathPlaces", Field: "deathPlace.name"},
		{Name: "nationalities", Field: "nationalities.name"},
		{Name: "publishers", Field: "isPartOf.publisher.name"},
	},
	Sorts: map[sorting.Key]string{
		sorting.Relevance: FieldScore,
		sorting.Name:      "name.keyword",
	},
	DefaultSort: sorting.Relevance,
	TextFields:  []string{"name", "description"},
}

// Datasets is the dataset profile.
var Datasets = Profile{
	Entity:       "datasets",
	DocumentType: "Dataset",
	Categories: []Category{
		{Name: "publishers", Field: "publisher.name"},
		{Name: "licenses", Field: "license.name"},
		{Name: "keywords", Field: "keywords"},
	},
	Sorts: map[sorting.Key]string{
		sorting.Relevance:   FieldScore,
		sorting.Name:        "name.keyword",
		sorting.DateCreated: "dateCreated",
	},
	DefaultSort: sorting.Relevance,
	TextFields:  []string{"name", "description", "keywords"},
}
