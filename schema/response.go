package schema

import (
	"encoding/json"
	"fmt"
)

// ResponseType tags the shape of a Response.
type ResponseType string

// Response variants.
const (
	ResponseText     ResponseType = "text"
	ResponseList     ResponseType = "list"
	ResponseError    ResponseType = "error"
	ResponseASCIIArt ResponseType = "ascii-art"
	ResponseStats    ResponseType = "stats"
	ResponseClear    ResponseType = "clear"
)

// ItemKind classifies list entries. The zero value means no kind.
type ItemKind string

// List entry kinds.
const (
	ItemNone   ItemKind = ""
	ItemFile   ItemKind = "file"
	ItemFolder ItemKind = "folder"
)

// ErrorKind classifies error responses.
type ErrorKind string

// Error kinds.
const (
	ErrorNotFound         ErrorKind = "not-found"
	ErrorNotReady         ErrorKind = "not-ready"
	ErrorPermissionDenied ErrorKind = "permission-denied"
)

// ListItem is one entry of a list response.
type ListItem struct {
	Name string   `json:"name"`
	Kind ItemKind `json:"type,omitempty"`
}

// StatRow is one labelled percentage in a stats response.
type StatRow struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StatsContent is the payload of a stats response.
type StatsContent struct {
	Title string    `json:"title"`
	Rows  []StatRow `json:"rows"`
}

// Response is the structured result of one terminal command.
// Text carries the content of text, error and ascii-art responses.
type Response struct {
	Type      ResponseType
	Text      string
	Items     []ListItem
	Stats     *StatsContent
	ErrorKind ErrorKind
}

// TextResponse builds a text response.
func TextResponse(text string) Response {
	return Response{Type: ResponseText, Text: text}
}

// ListResponse builds a list response.
func ListResponse(items ...ListItem) Response {
	return Response{Type: ResponseList, Items: items}
}

// NameList builds a list response of kind-less names.
func NameList(names []string) Response {
	items := make([]ListItem, 0, len(names))
	for _, name := range names {
		items = append(items, ListItem{Name: name})
	}
	return ListResponse(items...)
}

// ErrorResponse builds an error response.
func ErrorResponse(kind ErrorKind, message string) Response {
	return Response{Type: ResponseError, Text: message, ErrorKind: kind}
}

// ASCIIArtResponse builds an ascii-art response.
func ASCIIArtResponse(art string) Response {
	return Response{Type: ResponseASCIIArt, Text: art}
}

// StatsResponse builds a stats response.
func StatsResponse(title string, rows []StatRow) Response {
	return Response{Type: ResponseStats, Stats: &StatsContent{Title: title, Rows: rows}}
}

// ClearResponse builds the clear sentinel.
func ClearResponse() Response {
	return Response{Type: ResponseClear}
}

// IsClear reports whether the response asks the caller to empty its transcript.
func (r Response) IsClear() bool {
	return r.Type == ResponseClear
}

// Err converts an error response into a Go error matching the schema sentinels.
// Non-error responses return nil.
func (r Response) Err() error {
	if r.Type != ResponseError {
		return nil
	}
	var sentinel error
	switch r.ErrorKind {
	case ErrorNotReady:
		sentinel = ErrNotReady
	case ErrorPermissionDenied:
		sentinel = ErrPermissionDenied
	default:
		sentinel = ErrNotFound
	}
	return &CommandError{Message: r.Text, sentinel: sentinel}
}

// CommandError is the error form of an error response.
type CommandError struct {
	Message  string
	sentinel error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.sentinel
}

type wireResponse struct {
	Type    ResponseType    `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
	Kind    ErrorKind       `json:"kind,omitempty"`
}

// MarshalJSON encodes the response as {"type": ..., "content": ...}.
func (r Response) MarshalJSON() ([]byte, error) {
	var content any
	switch r.Type {
	case ResponseText, ResponseError, ResponseASCIIArt:
		content = r.Text
	case ResponseList:
		items := r.Items
		if items == nil {
			items = []ListItem{}
		}
		content = items
	case ResponseStats:
		stats := r.Stats
		if stats == nil {
			stats = &StatsContent{}
		}
		if stats.Rows == nil {
			stats = &StatsContent{Title: stats.Title, Rows: []StatRow{}}
		}
		content = stats
	case ResponseClear:
	default:
		return nil, fmt.Errorf("marshal response: unknown type %q", r.Type)
	}
	wire := wireResponse{Type: r.Type}
	if r.Type == ResponseError {
		wire.Kind = r.ErrorKind
	}
	if content != nil {
		data, err := json.Marshal(content)
		if err != nil {
			return nil, err
		}
		wire.Content = data
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the {"type": ..., "content": ...} form.
func (r *Response) UnmarshalJSON(data []byte) error {
	var wire wireResponse
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	out := Response{Type: wire.Type}
	switch wire.Type {
	case ResponseText, ResponseError, ResponseASCIIArt:
		if len(wire.Content) > 0 {
			if err := json.Unmarshal(wire.Content, &out.Text); err != nil {
				return fmt.Errorf("decode %s content: %w", wire.Type, err)
			}
		}
		if wire.Type == ResponseError {
			out.ErrorKind = wire.Kind
		}
	case ResponseList:
		if len(wire.Content) > 0 {
			if err := json.Unmarshal(wire.Content, &out.Items); err != nil {
				return fmt.Errorf("decode list content: %w", err)
			}
		}
	case ResponseStats:
		var stats StatsContent
		if len(wire.Content) > 0 {
			if err := json.Unmarshal(wire.Content, &stats); err != nil {
				return fmt.Errorf("decode stats content: %w", err)
			}
		}
		out.Stats = &stats
	case ResponseClear:
	default:
		return fmt.Errorf("decode response: unknown type %q", wire.Type)
	}
	*r = out
	return nil
}
