package postman

// Auth is a request or collection auth block.
type Auth struct {
	Type   string           `json:"type"`
	Bearer []*AuthAttribute `json:"bearer,omitempty"`
}

// AuthAttribute is a key/value pair of an auth block.
type AuthAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// BearerAuth returns bearer auth whose token is the {{access_token}} variable.
func BearerAuth() *Auth {
	return &Auth{
		Type: "bearer",
		Bearer: []*AuthAttribute{
			{Key: "token", Value: "{{" + VarAccessToken + "}}", Type: "string"},
		},
	}
}

// Token returns the bearer token value, or "" for other auth types.
func (a *Auth) Token() string {
	if a == nil || a.Type != "bearer" {
		return ""
	}
	for _, attr := range a.Bearer {
		if attr.Key == "token" {
			return attr.Value
		}
	}
	return ""
}
