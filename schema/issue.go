package schema

// Issue is a single validation failure.
//
// Path identifies the offending location inside the validated value as a
// sequence of property names and array indexes, e.g. ["items", 2, "id"].
// An empty (but non-nil) path refers to the value itself.
type Issue struct {
	Message string `json:"message"`
	Path    []any  `json:"path"`
}

// Result is the outcome of Schema.Validate.
//
// When OK is true, Data holds the validated/coerced value and Issues is
// empty. When OK is false, Data is nil and Issues holds at least one entry.
type Result struct {
	OK     bool
	Data   any
	Issues []Issue
}

// Schema validates one raw request value.
//
// Implementations must not panic on malformed input; every failure is
// reported through Result.Issues.
type Schema interface {
	Validate(value any) Result
}

// ok builds a passing Result.
func ok(data any) Result {
	return Result{OK: true, Data: data}
}

// fail builds a failing Result from one or more issues.
func fail(issues ...Issue) Result {
	return Result{OK: false, Issues: issues}
}

// normalize converts the flattened string maps the adapter extracts for
// query/segment/headers into the generic JSON shape both backends expect.
// Any other value is passed through untouched.
func normalize(value any) any {
	m, isStringMap := value.(map[string]string)
	if !isStringMap {
		return value
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
