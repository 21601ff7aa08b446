package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"notesapi/pkg/note"
	"notesapi/utils/logging"
)

var tracer = otel.Tracer("notesapi/routers/api/v1")

type NoteResource struct {
	noter note.Noter
}

// NoteRouter registers the note routes for the given service.
func NoteRouter(noter note.Noter) {
	r := &NoteResource{noter: noter}
	APIs["/notes"] = map[UriInterface]interface{}{
		NewUri("GET", ""):     r.NoteList,
		NewUri("POST", ""):    r.CreateNote,
		NewUri("GET", "/:id"): r.GetNote,
		NewUri("PUT", "/:id"): r.UpdateNote,
	}
}

func (nr *NoteResource) NoteList(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "get_notes")
	defer span.End()

	notes, err := nr.noter.NoteList(ctx)
	if err != nil {
		logging.Error("list notes:", err)
		resp.Render(c, statusOf(err), nil, err)
		return
	}
	resp.Render(c, http.StatusOK, notes, nil)
}

func (nr *NoteResource) GetNote(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "get_note")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("note_id", id))

	n, err := nr.noter.GetNote(ctx, id)
	if err != nil {
		if !errors.Is(err, note.ErrNotFound) {
			logging.Error("get note:", err)
		}
		resp.Render(c, statusOf(err), nil, err)
		return
	}
	resp.Render(c, http.StatusOK, n, nil)
}

func (nr *NoteResource) UpdateNote(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "update_note")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("note_id", id))

	var req note.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Render(c, http.StatusBadRequest, nil, err)
		return
	}
	if err := nr.noter.UpsertNote(ctx, id, &req); err != nil {
		logging.Error("update note:", err)
		resp.Render(c, statusOf(err), nil, err)
		return
	}
	resp.Render(c, http.StatusNoContent, nil, nil)
}

func (nr *NoteResource) CreateNote(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "create_note")
	defer span.End()

	var req note.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Render(c, http.StatusBadRequest, nil, err)
		return
	}
	id, err := nr.noter.CreateNote(ctx, &req)
	if err != nil {
		logging.Error("create note:", err)
		resp.Render(c, statusOf(err), nil, err)
		return
	}
	span.SetAttributes(
		attribute.String("note_id", id),
		attribute.String("request", req.Title),
	)
	resp.Render(c, http.StatusCreated, id, nil)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, note.ErrBackendUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
