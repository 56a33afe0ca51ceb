package converter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/oaspostman/oaserrors"
	"github.com/erraggy/oaspostman/parser"
	"github.com/erraggy/oaspostman/postman"
)

// pathParamPattern matches a single-brace path parameter such as {slug}.
// Double-brace variables are removed before matching.
var pathParamPattern = regexp.MustCompile(`\{([^{}]+)\}`)

var postmanVarPattern = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// requestBuilder turns operations into request items, recording issues on
// the shared result.
type requestBuilder struct {
	pathVariables []string
	bearerSchemes []string
	result        *Result
}

func (b *requestBuilder) addIssue(path, message string, sev Severity, context string) {
	b.result.Issues = append(b.result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Context:  context,
	})
}

func (b *requestBuilder) build(path string, op *parser.Operation) (*postman.Item, error) {
	location := fmt.Sprintf("paths.%s.%s", path, op.Method)
	method := strings.ToUpper(op.Method)

	name := requestName(path, method, op)
	if op.Summary == "" && op.OperationID == "" {
		b.addIssue(location, "operation has no summary or operationId; using synthesized name", SeverityInfo, name)
	}

	postmanPath := b.substitutePath(path)
	for _, m := range pathParamPattern.FindAllStringSubmatch(postmanVarPattern.ReplaceAllString(postmanPath, ""), -1) {
		b.addIssue(location, fmt.Sprintf("path parameter {%s} left unsubstituted", m[1]), SeverityWarning,
			"add it with WithPathVariables to emit {{"+m[1]+"}}")
	}

	req := &postman.Request{
		Method: method,
		Header: []*postman.Header{postman.JSONContentType()},
		URL:    postman.NewURL(postmanPath),
	}

	if op.RequestSchema != nil {
		example, placeholder := synthesizeExample(op.RequestSchema, location, b.addIssue)
		if placeholder {
			b.addIssue(location+".requestBody", "no usable properties; using placeholder body", SeverityInfo, op.RequestSchema.Ref)
		}
		body, err := postman.RawJSONBody(example)
		if err != nil {
			return nil, &oaserrors.ConversionError{
				Location: location + ".requestBody",
				Message:  "failed to encode example body",
				Cause:    err,
			}
		}
		req.Body = body
	}

	if b.wantsBearer(op) {
		if isCredentialEndpoint(name) {
			b.addIssue(location, "bearer auth omitted for credential-issuing request", SeverityInfo, name)
		} else {
			req.Auth = postman.BearerAuth()
		}
	}

	if op.Description != "" {
		req.Description = op.Description
	}

	return &postman.Item{
		Name:     name,
		Request:  req,
		Response: []json.RawMessage{},
	}, nil
}

// folderTag returns the first tag, or DefaultFolder when there is none.
func folderTag(op *parser.Operation) string {
	if len(op.Tags) == 0 {
		return DefaultFolder
	}
	return op.Tags[0]
}

// requestName prefers the summary, then the operationId, then "METHOD /path".
func requestName(path, method string, op *parser.Operation) string {
	if op.Summary != "" {
		return op.Summary
	}
	if op.OperationID != "" {
		return op.OperationID
	}
	return method + " " + path
}

// substitutePath rewrites {version} and allow-listed {param} placeholders
// into Postman {{variable}} form.
func (b *requestBuilder) substitutePath(path string) string {
	out := strings.ReplaceAll(path, "{version}", "{{version}}")
	for _, name := range b.pathVariables {
		out = strings.ReplaceAll(out, "{"+name+"}", "{{"+name+"}}")
	}
	return out
}

// wantsBearer reports whether the operation is unsecured or accepts one of
// the bearer schemes.
func (b *requestBuilder) wantsBearer(op *parser.Operation) bool {
	if len(op.Security) == 0 {
		return true
	}
	for _, req := range op.Security {
		for _, scheme := range b.bearerSchemes {
			if req.Has(scheme) {
				return true
			}
		}
	}
	return false
}

// isCredentialEndpoint reports whether a request name looks like a login or
// registration call, which must not send a token.
func isCredentialEndpoint(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "login") || strings.Contains(lower, "register")
}
