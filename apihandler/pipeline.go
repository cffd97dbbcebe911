package apihandler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// run executes EXTRACT -> VALIDATE -> PRE-HANDLER against the configured
// setup. It reports handled=true when a short-circuit response was written,
// in which case the final handler must not run. The returned error is only
// ever a response-write failure.
func (s Setup) run(req Request, res Responder, hc *Context, log *zerolog.Logger) (handled bool, err error) {
	shortCircuit := s.Config.shortCircuit()

	for _, entry := range s.Schema.all() {
		raw, bodyErr := extract(req, entry.field)
		if bodyErr != nil {
			if shortCircuit {
				return true, res.JSON(http.StatusBadRequest, invalidBodyFailure())
			}

			log.Error().Err(bodyErr).Msg("invalid JSON body, validating empty object instead")
			raw = map[string]any{}
		}

		result := entry.schema.Validate(raw)
		if result.OK {
			hc.set(entry.field, result.Data)
			continue
		}

		hc.Issues = append(hc.Issues, result.Issues...)
		if shortCircuit {
			return true, res.JSON(http.StatusBadRequest, fieldFailure(entry.field, result.Issues))
		}
		// The field keeps its default empty object; later fields still run.
	}

	if s.PreHandler == nil {
		return false, nil
	}

	preErr := s.PreHandler(hc)
	if preErr == nil {
		return false, nil
	}

	var apiErr *Error
	if !errors.As(preErr, &apiErr) {
		return true, res.JSON(http.StatusBadRequest, PreHandlerFailure{
			Status:     statusError,
			StatusCode: http.StatusBadRequest,
			Message:    preHandlerFailedMessage,
		})
	}

	// A structured message becomes the JSON response body as-is; anything
	// that does not parse goes out as plain text.
	var body any
	if jsonErr := json.Unmarshal([]byte(apiErr.Message()), &body); jsonErr == nil {
		return true, res.JSON(apiErr.Status(), body)
	}
	return true, res.Text(apiErr.Status(), apiErr.Message())
}

// extract pulls the raw value for one field. Only the body can fail.
func extract(req Request, field Field) (any, error) {
	switch field {
	case FieldBody:
		return req.ReadJSONBody()
	case FieldSegment:
		return req.PathParams(), nil
	case FieldQuery:
		return req.QueryParams(), nil
	case FieldHeaders:
		return req.Headers(), nil
	default:
		return map[string]any{}, nil
	}
}
