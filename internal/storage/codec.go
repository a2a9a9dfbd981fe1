package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"todo/internal/todo"
)

// ErrMalformed is returned by Decode for data that is not a task list.
var ErrMalformed = errors.New("malformed task list")

// record mirrors todo.Task with every field required.
type record struct {
	ID        *int64  `json:"id"`
	Text      *string `json:"text"`
	Completed *bool   `json:"isCompleted"`
}

// Encode serializes l as a JSON array of {id, text, isCompleted} records.
func Encode(l todo.List) ([]byte, error) {
	if l == nil {
		l = todo.List{}
	}
	return json.Marshal(l)
}

// Decode parses data produced by Encode. It rejects anything that is not an
// array of complete records, and lists that fail todo.List.Validate.
func Decode(data []byte) (todo.List, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrMalformed)
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var l todo.List
	for i, r := range recs {
		if r.ID == nil || r.Text == nil || r.Completed == nil {
			return nil, fmt.Errorf("%w: record %d is missing a field", ErrMalformed, i)
		}
		l = append(l, todo.Task{ID: *r.ID, Text: *r.Text, Completed: *r.Completed})
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return l, nil
}
