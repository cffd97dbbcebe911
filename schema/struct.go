package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// validate is the shared validator instance for all struct schemas.
//
// Field names in reported issues follow the `json` tag, falling back to the
// lowercased Go field name, so issue paths match what the client sent.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(field.Name)
		}
		return name
	})
	return v
}

// structSchema decodes a raw value into T and applies T's validator tags.
type structSchema[T any] struct{}

// Struct returns a Schema backed by the tagged struct type T.
//
// Validation happens in two stages:
//  1. the raw value is decoded into T with weakly-typed input, so string
//     query/segment/header values coerce into numeric or boolean fields
//  2. T's `validate` tags are enforced
//
// On success the Result data is the decoded T value, never the raw input.
func Struct[T any]() Schema {
	return structSchema[T]{}
}

func (structSchema[T]) Validate(value any) Result {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fail(Issue{Message: err.Error(), Path: []any{}})
	}

	if err := decoder.Decode(normalize(value)); err != nil {
		return fail(decodeIssues(err)...)
	}

	if err := validate.Struct(&out); err != nil {
		return fail(tagIssues(err)...)
	}

	return ok(out)
}

// decodeIssues converts mapstructure decode failures into issues. The
// decoder joins the per-field errors into one; each joined entry names the
// offending field, which becomes the issue path.
func decodeIssues(err error) []Issue {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []Issue{decodeIssue(err)}
	}

	entries := joined.Unwrap()
	issues := make([]Issue, 0, len(entries))
	for _, entry := range entries {
		issues = append(issues, decodeIssue(entry))
	}
	return issues
}

func decodeIssue(err error) Issue {
	var decodeErr *mapstructure.DecodeError
	if errors.As(err, &decodeErr) {
		return Issue{Message: decodeErr.Error(), Path: fieldPath(decodeErr.Name())}
	}
	return Issue{Message: err.Error(), Path: []any{}}
}

// tagIssues converts validator tag failures into issues with client-friendly
// messages per tag.
func tagIssues(err error) []Issue {
	var tagErrs validator.ValidationErrors
	if !errors.As(err, &tagErrs) {
		return []Issue{{Message: err.Error(), Path: []any{}}}
	}

	issues := make([]Issue, 0, len(tagErrs))
	for _, fe := range tagErrs {
		issues = append(issues, Issue{
			Message: tagMessage(fe),
			Path:    namespacePath(fe.Namespace()),
		})
	}
	return issues
}

// tagMessage renders one validator failure as a message a client can act on.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		// For strings min is a length, for numbers a value.
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "uuid":
		return "must be a valid UUID"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}

// namespacePath turns a validator namespace ("Request.owner.tags[2]") into
// path segments, dropping the leading struct type name.
func namespacePath(namespace string) []any {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}

	path := []any{}
	for _, segment := range segments {
		path = append(path, fieldPath(segment)...)
	}
	return path
}

// fieldPath splits a single segment that may carry array indexes,
// e.g. "tags[2]" becomes ["tags", 2].
func fieldPath(segment string) []any {
	path := []any{}
	for _, part := range strings.Split(segment, ".") {
		name := part
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				if name != "" {
					path = append(path, name)
				}
				break
			}

			if open > 0 {
				path = append(path, name[:open])
			}

			end := strings.IndexByte(name, ']')
			if end < 0 {
				break
			}
			key := name[open+1 : end]
			if index, err := strconv.Atoi(key); err == nil {
				path = append(path, index)
			} else if key != "" {
				// Map keys stay string segments.
				path = append(path, key)
			}
			name = name[end+1:]
		}
	}
	return path
}
