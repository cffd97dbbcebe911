// Package schema defines the validation capability used by the request
// adapter.
//
// A Schema validates one extracted request field (body, query, segment,
// headers) without panicking or returning Go errors: the outcome is always a
// Result carrying either the validated/coerced value or a list of structured
// issues.
//
// Two backends are provided:
//   - JSON: a compiled JSON Schema document (santhosh-tekuri/jsonschema)
//   - Struct: a tagged Go struct decoded with mapstructure and checked with
//     the `validator` library's struct tags
package schema
