// Package kinyarwanda registers the built-in Kinyarwanda singular/plural
// pack. Import it for its side effect.
package kinyarwanda

import (
	"github.com/vovakirdan/word-match/internal/catalog"
	"github.com/vovakirdan/word-match/internal/registry"
)

// ID is the registry id of the pack.
const ID = "kinyarwanda"

// Catalog returns the pack. Level 3 holds invariant nouns whose singular and
// plural are spelled the same.
func Catalog() catalog.Catalog {
	return catalog.Catalog{
		ID:    ID,
		Title: "Kinyarwanda Matching Game",
		Levels: []catalog.Level{
			{
				Name: "People",
				Pairs: []catalog.WordPair{
					{Singular: "umuntu", Plural: "abantu"},
					{Singular: "umwana", Plural: "abana"},
				},
			},
			{
				Name: "Things",
				Pairs: []catalog.WordPair{
					{Singular: "igiti", Plural: "ibiti"},
					{Singular: "ikirenge", Plural: "ibirenge"},
					{Singular: "igitabo", Plural: "ibitabo"},
				},
			},
			{
				Name: "Animals",
				Pairs: []catalog.WordPair{
					{Singular: "inka", Plural: "inka"},
					{Singular: "ihene", Plural: "ihene"},
					{Singular: "intama", Plural: "intama"},
				},
			},
		},
	}
}

func init() {
	registry.Register(ID, Catalog)
}
