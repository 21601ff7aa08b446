package note

import "encoding/json"

type Notes []Note

// Note is a stored record. The identifier rides as the storage key (or
// object name) in every backend, so the wire payload carries only title
// and content.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNoteRequest is the body of both note creation and full-overwrite
// update. Its JSON form doubles as the payload written to the non-memory
// backends.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toJSON(req *CreateNoteRequest) ([]byte, error) {
	return json.Marshal(req)
}

func fromJSON(id string, js []byte) (*Note, error) {
	var req CreateNoteRequest
	if err := json.Unmarshal(js, &req); err != nil {
		return nil, err
	}
	return &Note{ID: id, Title: req.Title, Content: req.Content}, nil
}
