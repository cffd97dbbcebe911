package apihandler

import "github.com/nmoreau/go-apihandler/schema"

// Field names one validatable part of an incoming request.
type Field string

const (
	FieldBody    Field = "body"
	FieldSegment Field = "segment"
	FieldQuery   Field = "query"
	FieldHeaders Field = "headers"
)

// Fields is an ordered collection of per-field schemas.
//
// The pipeline processes fields in the order they were registered here, so
// the first registered field is the first to fail a request. Registering the
// same field twice replaces the schema without changing its position.
type Fields struct {
	entries []fieldSchema
}

type fieldSchema struct {
	field  Field
	schema schema.Schema
}

// NewFields creates an empty field-schema collection.
func NewFields() *Fields {
	return &Fields{}
}

// Body registers a schema for the JSON request body.
func (f *Fields) Body(s schema.Schema) *Fields {
	return f.set(FieldBody, s)
}

// Segment registers a schema for the router's path parameters.
func (f *Fields) Segment(s schema.Schema) *Fields {
	return f.set(FieldSegment, s)
}

// Query registers a schema for the URL query parameters.
func (f *Fields) Query(s schema.Schema) *Fields {
	return f.set(FieldQuery, s)
}

// Headers registers a schema for the request headers.
func (f *Fields) Headers(s schema.Schema) *Fields {
	return f.set(FieldHeaders, s)
}

func (f *Fields) set(field Field, s schema.Schema) *Fields {
	for i, entry := range f.entries {
		if entry.field == field {
			f.entries[i].schema = s
			return f
		}
	}
	f.entries = append(f.entries, fieldSchema{field: field, schema: s})
	return f
}

// Len reports how many fields carry a schema.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.entries)
}

func (f *Fields) all() []fieldSchema {
	if f == nil {
		return nil
	}
	return f.entries
}
