package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"fsanano/rest-client/internal/apperr"
)

var placeholder = regexp.MustCompile(`\{([^{}/]+)\}`)

// BuildURI joins origin and path, substitutes {name} placeholders in path
// with the escaped values from pathVars and encodes query.
func BuildURI(origin, path string, pathVars map[string]string, query url.Values) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(origin, "/"))
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "", fmt.Sprintf("parse origin %q: %v", origin, err))
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "", fmt.Sprintf("origin %q must include scheme and host", origin))
	}

	var missing []string
	rawPath := placeholder.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := pathVars[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(v)
	})
	if len(missing) > 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "", fmt.Sprintf("no value for path variable(s) %s in %q", strings.Join(missing, ", "), path))
	}
	if !strings.HasPrefix(rawPath, "/") {
		rawPath = "/" + rawPath
	}

	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "", fmt.Sprintf("path %q: %v", path, err))
	}

	u := *base
	u.Path = base.Path + decoded
	u.RawPath = base.EscapedPath() + rawPath
	u.RawQuery = query.Encode()
	return &u, nil
}

// Request is one outbound call. Body, when set, is sent as JSON.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   any
}

func NewGet(u *url.URL, header http.Header) Request {
	return Request{Method: http.MethodGet, URL: u, Header: header}
}

func NewPostJSON(u *url.URL, body any) Request {
	return Request{Method: http.MethodPost, URL: u, Body: body}
}
