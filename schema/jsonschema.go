package schema

import (
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// jsonSchema validates values against a compiled JSON Schema document.
type jsonSchema struct {
	compiled *jsonschema.Schema
}

// JSON compiles a JSON Schema document into a Schema.
//
// The document must be a valid draft 2020-12 (or earlier) schema. Validation
// performs no coercion: on success the validated value itself becomes the
// Result data.
func JSON(document string) (Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(document)); err != nil {
		return nil, err
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, err
	}

	return &jsonSchema{compiled: compiled}, nil
}

// MustJSON is like JSON but panics when the document does not compile.
// Intended for package-level schema declarations.
func MustJSON(document string) Schema {
	s, err := JSON(document)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *jsonSchema) Validate(value any) Result {
	v := normalize(value)

	err := s.compiled.Validate(v)
	if err == nil {
		return ok(v)
	}

	// Anything other than a validation error (e.g. an infinite-loop guard)
	// is still reported as a single root-level issue.
	ve, isValidation := err.(*jsonschema.ValidationError)
	if !isValidation {
		return fail(Issue{Message: err.Error(), Path: []any{}})
	}

	return fail(collectLeaves(ve, nil)...)
}

// collectLeaves walks the validation error tree and keeps only the leaf
// causes. The root error just restates that validation failed; the leaves
// carry the actionable messages and instance locations.
func collectLeaves(ve *jsonschema.ValidationError, issues []Issue) []Issue {
	if len(ve.Causes) == 0 {
		return append(issues, Issue{
			Message: ve.Message,
			Path:    pointerToPath(ve.InstanceLocation),
		})
	}

	for _, cause := range ve.Causes {
		issues = collectLeaves(cause, issues)
	}
	return issues
}

// pointerToPath converts a JSON pointer ("/items/2/id") into path segments
// (["items", 2, "id"]). Numeric segments become ints so array indexes keep
// their type in the issue path.
func pointerToPath(pointer string) []any {
	path := []any{}
	if pointer == "" || pointer == "/" {
		return path
	}

	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")

		if index, err := strconv.Atoi(segment); err == nil {
			path = append(path, index)
			continue
		}
		path = append(path, segment)
	}
	return path
}
