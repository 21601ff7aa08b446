package routers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/pkg/note"
	"notesapi/utils/options"
)

func newTestRouter() *gin.Engine {
	conf := &options.Config{
		Backend: options.BackendMemory,
		Http:    options.Http{RunMode: gin.TestMode},
	}
	noter := note.NewWithSelector(note.NewSelector(conf))
	return InitRouter(conf, noter)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootRedirectsToNotes(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/notes", w.Header().Get("Location"))
}

func TestCreateNoteAndGetItBack(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/notes", `{"title":"todo","content":"ship it"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var id string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	require.NotEmpty(t, id)

	w = do(r, http.MethodGet, "/notes/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var n note.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &n))
	assert.Equal(t, id, n.ID)
	assert.Equal(t, "todo", n.Title)
	assert.Equal(t, "ship it", n.Content)
}

func TestGetMissingNoteReturns404(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/notes/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPutUpsertsAndOverwrites(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPut, "/notes/fixed-id", `{"title":"v1","content":"old"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodPut, "/notes/fixed-id", `{"title":"v2","content":"new"}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/notes/fixed-id", "")
	require.Equal(t, http.StatusOK, w.Code)

	var n note.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &n))
	assert.Equal(t, "v2", n.Title)
	assert.Equal(t, "new", n.Content)
}

func TestListNotes(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/notes/id-1", `{"title":"a","content":""}`).Code)
	require.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/notes/id-2", `{"title":"b","content":""}`).Code)

	w = do(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var notes note.Notes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{"id-1", "id-2"}, ids)
}

func TestCreateNoteRejectsMalformedBody(t *testing.T) {
	r := newTestRouter()

	w := do(r, http.MethodPost, "/notes", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
