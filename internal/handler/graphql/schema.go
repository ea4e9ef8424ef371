package graphql

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 8

// NewSchema parses the embedded SDL against the root resolver. It panics when
// a resolver method does not match the SDL.
func NewSchema(root *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, root, graphql.MaxDepth(maxQueryDepth))
}
