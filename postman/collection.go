package postman

import "github.com/google/uuid"

// SchemaURL identifies the v2.1.0 collection format.
const SchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Defaults applied by NewCollection when a Settings field is empty.
const (
	DefaultName        = "ZiraAI API - Complete Collection"
	DefaultDescription = "Auto-generated from Swagger - All endpoints with proper auth"
	DefaultBaseURL     = "https://localhost:5001"
	DefaultAPIVersion  = "1"
)

// Collection variable names referenced by generated requests and scripts.
const (
	VarBaseURL      = "base_url"
	VarVersion      = "version"
	VarAccessToken  = "access_token"
	VarRefreshToken = "refresh_token"
	VarTokenExpiry  = "token_expiry"
)

// Info is the collection "info" block.
type Info struct {
	PostmanID   string `json:"_postman_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      string `json:"schema"`
}

// Collection is a Postman v2.1 collection whose top-level items are folders.
type Collection struct {
	Info     Info         `json:"info"`
	Item     []*ItemGroup `json:"item"`
	Auth     *Auth        `json:"auth,omitempty"`
	Event    []*Event     `json:"event,omitempty"`
	Variable []*Variable  `json:"variable,omitempty"`
}

// Variable is a collection variable.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Settings configures the fixed collection preamble.
type Settings struct {
	// ID is the _postman_id; a random UUID is generated when empty
	ID string
	// Name defaults to DefaultName
	Name string
	// Description defaults to DefaultDescription
	Description string
	// BaseURL seeds the base_url variable; defaults to DefaultBaseURL
	BaseURL string
	// APIVersion seeds the version variable; defaults to DefaultAPIVersion
	APIVersion string
}

func (s Settings) withDefaults() Settings {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Description == "" {
		s.Description = DefaultDescription
	}
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.APIVersion == "" {
		s.APIVersion = DefaultAPIVersion
	}
	return s
}

// NewCollection returns an empty collection carrying the standard preamble:
// collection-wide bearer auth on {{access_token}}, the token expiry reminder
// and token capture scripts, and the five collection variables.
func NewCollection(s Settings) *Collection {
	s = s.withDefaults()
	return &Collection{
		Info: Info{
			PostmanID:   s.ID,
			Name:        s.Name,
			Description: s.Description,
			Schema:      SchemaURL,
		},
		Item:  []*ItemGroup{},
		Auth:  BearerAuth(),
		Event: []*Event{PrerequestEvent(), TestEvent()},
		Variable: []*Variable{
			{Key: VarBaseURL, Value: s.BaseURL, Type: "string"},
			{Key: VarVersion, Value: s.APIVersion, Type: "string"},
			{Key: VarAccessToken, Value: "", Type: "string"},
			{Key: VarRefreshToken, Value: "", Type: "string"},
			{Key: VarTokenExpiry, Value: "", Type: "string"},
		},
	}
}

// Folder returns the top-level folder with the given name, or nil.
func (c *Collection) Folder(name string) *ItemGroup {
	for _, g := range c.Item {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FolderCount returns the number of top-level folders.
func (c *Collection) FolderCount() int {
	return len(c.Item)
}

// RequestCount returns the number of request items across all folders.
func (c *Collection) RequestCount() int {
	n := 0
	for _, g := range c.Item {
		n += len(g.Item)
	}
	return n
}

// VariableByKey returns the collection variable with the given key, or nil.
func (c *Collection) VariableByKey(key string) *Variable {
	for _, v := range c.Variable {
		if v.Key == key {
			return v
		}
	}
	return nil
}
