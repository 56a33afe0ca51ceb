package postman

import (
	"encoding/json"
	"strings"
)

// ItemGroup is a folder of requests.
type ItemGroup struct {
	Name        string  `json:"name"`
	Item        []*Item `json:"item"`
	Description string  `json:"description,omitempty"`
}

// Item is a single request entry. Response is always serialized, as an empty
// list for generated items. Saved responses of a decoded collection are kept
// undecoded.
type Item struct {
	Name     string            `json:"name"`
	Request  *Request          `json:"request"`
	Response []json.RawMessage `json:"response"`
}

// Request describes the HTTP call of an Item.
type Request struct {
	Method      string    `json:"method"`
	Header      []*Header `json:"header"`
	URL         *URL      `json:"url"`
	Body        *Body     `json:"body,omitempty"`
	Auth        *Auth     `json:"auth,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Header is a request header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// JSONContentType returns the "Content-Type: application/json" header.
func JSONContentType() *Header {
	return &Header{Key: "Content-Type", Value: "application/json", Type: "text"}
}

// URL is a structured request URL.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

// NewURL builds a URL rooted at {{base_url}}. path is appended verbatim to
// the raw form and split on "/" into non-empty segments.
func NewURL(path string) *URL {
	host := "{{" + VarBaseURL + "}}"
	segments := []string{}
	for _, s := range strings.Split(strings.Trim(path, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return &URL{
		Raw:  host + path,
		Host: []string{host},
		Path: segments,
	}
}

// Body is a request body. Only raw mode is generated.
type Body struct {
	Mode    string       `json:"mode"`
	Raw     string       `json:"raw"`
	Options *BodyOptions `json:"options,omitempty"`
}

// BodyOptions holds mode-specific body settings.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

// RawOptions sets the editor language of a raw body.
type RawOptions struct {
	Language string `json:"language"`
}

// RawJSONBody renders v as 2-space indented JSON in a raw body tagged as json.
func RawJSONBody(v any) (*Body, error) {
	raw, err := marshalIndent(v)
	if err != nil {
		return nil, err
	}
	return &Body{
		Mode:    "raw",
		Raw:     string(raw),
		Options: &BodyOptions{Raw: RawOptions{Language: "json"}},
	}, nil
}
