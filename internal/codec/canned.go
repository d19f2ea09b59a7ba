package codec

import (
	"encoding/json"
	"errors"

	"github.com/supporthub/helpdesk/internal/domain"
	"github.com/supporthub/helpdesk/pkg/util"
)

// CannedImportItem is one element of an import payload. The id of an imported
// item is ignored; creation always assigns a fresh one.
type CannedImportItem struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Shortcut string `json:"shortcut"`
	Body     string `json:"body"`
}

// CannedToJSON serializes the collection as a 2-space-indented JSON array.
func CannedToJSON(canned []domain.CannedReply) (string, error) {
	if canned == nil {
		canned = []domain.CannedReply{}
	}
	raw, err := json.MarshalIndent(canned, "", "  ")
	if err != nil {
		return "", util.NewInternalError(err)
	}
	return string(raw), nil
}

// CannedFromJSON parses an import payload. A payload that is not a JSON array
// rejects the whole call; malformed individual elements are skipped.
// json.Unmarshal accepts a top-level null into a slice, so the array shape is
// checked explicitly.
func CannedFromJSON(text string) ([]CannedImportItem, error) {
	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, util.NewInvalidImportFormat(err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, util.NewInvalidImportFormat(errors.New("payload is not an array"))
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elements); err != nil {
		return nil, util.NewInvalidImportFormat(err)
	}

	items := make([]CannedImportItem, 0, len(elements))
	for _, raw := range elements {
		var item CannedImportItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
