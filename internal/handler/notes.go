package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nmoreau/go-apihandler/apihandler"
	"github.com/nmoreau/go-apihandler/internal/errs"
	"github.com/nmoreau/go-apihandler/internal/middleware"
	"github.com/nmoreau/go-apihandler/internal/server"
	"github.com/nmoreau/go-apihandler/schema"
)

// NotesHandler is the demo resource. It exists to exercise every feature of
// the adapter: body, query, segment and header schemas, the pre-handler API
// key gate, and the pass-through validation mode. Nothing is persisted.
type NotesHandler struct {
	Handler
}

// NewNotesHandler constructs a NotesHandler.
func NewNotesHandler(s *server.Server) *NotesHandler {
	return &NotesHandler{
		Handler: NewHandler(s),
	}
}

// CreateNoteRequest is the write payload.
type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Content  string   `json:"content" validate:"max=10000"`
	Tags     []string `json:"tags" validate:"max=8"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low normal high"`
}

// Note is the response shape for a created note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// listNotesQuery holds the validated/coerced query parameters for listing.
type listNotesQuery struct {
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Tag   string `json:"tag"`
}

// writeHeaders validates the headers of write endpoints. Header names are
// lowercased by the adapter's extraction. The API key itself is checked by
// the pre-handler, not here, so its absence surfaces as a 401 rather than a
// validation error.
type writeHeaders struct {
	ContentType string `json:"content-type" validate:"required"`
}

// noteSegmentSchema validates the :id path segment as a UUID.
var noteSegmentSchema = schema.MustJSON(`{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {
			"type": "string",
			"pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
		}
	}
}`)

// requireAPIKey is the pre-handler for write endpoints. A missing key aborts
// with a plain-text 401; a wrong key aborts with a structured 403 body.
func (h *NotesHandler) requireAPIKey(hc *apihandler.Context) error {
	key := hc.Request.Header.Get("X-API-Key")
	if key == "" {
		return apihandler.NewError("API key required", http.StatusUnauthorized)
	}

	if subtle.ConstantTimeCompare([]byte(key), []byte(h.server.Config.Auth.APIKey)) != 1 {
		return apihandler.NewErrorPayload(map[string]any{
			"reason": "invalid API key",
		}, http.StatusForbidden)
	}

	return nil
}

// Create returns the adapted POST /notes handler.
func (h *NotesHandler) Create() echo.HandlerFunc {
	setup := apihandler.Setup{
		Schema: apihandler.NewFields().
			Body(schema.Struct[CreateNoteRequest]()).
			Headers(schema.Struct[writeHeaders]()),
		PreHandler: h.requireAPIKey,
	}

	return apihandler.Adapt(setup, func(c echo.Context, hc *apihandler.Context) error {
		req := hc.Body.(CreateNoteRequest)

		priority := req.Priority
		if priority == "" {
			priority = "normal"
		}

		note := Note{
			ID:        uuid.New().String(),
			Title:     req.Title,
			Content:   req.Content,
			Tags:      req.Tags,
			Priority:  priority,
			CreatedAt: time.Now().UTC(),
		}

		middleware.GetLogger(c).Info().
			Str("operation", "create_note").
			Str("note_id", note.ID).
			Msg("note created")

		return c.JSON(http.StatusCreated, note)
	})
}

// List returns the adapted GET /notes handler.
func (h *NotesHandler) List() echo.HandlerFunc {
	setup := apihandler.Setup{
		Schema: apihandler.NewFields().
			Query(schema.Struct[listNotesQuery]()),
	}

	return apihandler.Adapt(setup, func(c echo.Context, hc *apihandler.Context) error {
		query := hc.Query.(listNotesQuery)

		limit := query.Limit
		if limit == 0 {
			limit = 20
		}

		// Nothing is persisted, so the listing is always empty; the point
		// is the coerced filter values.
		return c.JSON(http.StatusOK, map[string]any{
			"items": []Note{},
			"limit": limit,
			"tag":   query.Tag,
		})
	})
}

// GetByID returns the adapted GET /notes/:id handler. With no storage
// behind it, a well-formed ID always resolves to 404 through the global
// error handler.
func (h *NotesHandler) GetByID() echo.HandlerFunc {
	setup := apihandler.Setup{
		Schema: apihandler.NewFields().
			Segment(noteSegmentSchema),
	}

	return apihandler.Adapt(setup, func(c echo.Context, hc *apihandler.Context) error {
		return errs.NewNotFoundError("Note not found")
	})
}

// Preview returns the adapted POST /notes/preview handler. It runs the same
// body schema as Create but with short-circuiting disabled, so clients get
// every accumulated issue back instead of a 400 on the first failure.
func (h *NotesHandler) Preview() echo.HandlerFunc {
	setup := apihandler.Setup{
		Schema: apihandler.NewFields().
			Body(schema.Struct[CreateNoteRequest]()).
			Query(schema.Struct[listNotesQuery]()),
		Config: apihandler.Config{
			Return400ValidationError: apihandler.Bool(false),
		},
	}

	return apihandler.Adapt(setup, func(c echo.Context, hc *apihandler.Context) error {
		issues := hc.Issues
		if issues == nil {
			issues = []schema.Issue{}
		}

		return c.JSON(http.StatusOK, map[string]any{
			"valid":  len(issues) == 0,
			"issues": issues,
		})
	})
}
