// Package drivetest provides an in-memory fake of the parts of the Drive v3 API used by driveops.
//
// The fake serves files.list, permissions.list and permissions.delete. files.list honours simple
// q clauses on name, mimeType and trashed, and orderBy on name, modifiedTime and createdTime. It records every request
// so tests can assert on the exact parameters that reached the wire.
package drivetest

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Request is a request received by the fake.
type Request struct {
	Method string
	Path   string
	Query  url.Values
}

// Server is a fake Drive API endpoint.
type Server struct {
	server *httptest.Server

	mu          sync.Mutex
	files       []*drive.File
	permissions map[string][]*drive.Permission
	// permissionPageSize splits permissions.list responses into pages when positive.
	permissionPageSize int
	failure            *failure
	requests           []Request
}

type failure struct {
	code    int
	reason  string
	message string
}

// NewServer starts a fake Drive endpoint that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{permissions: map[string][]*drive.Permission{}}
	s.server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the base URL to be used as the client endpoint.
func (s *Server) URL() string {
	return s.server.URL + "/"
}

// Service returns a drive.Service talking to the fake without authentication.
func (s *Server) Service(t testing.TB) *drive.Service {
	t.Helper()
	service, err := drive.NewService(context.Background(),
		option.WithEndpoint(s.URL()),
		option.WithHTTPClient(s.server.Client()),
	)
	if err != nil {
		t.Fatalf("failed to create drive service: %v", err)
	}
	return service
}

// AddFiles appends files to the listing served by files.list.
func (s *Server) AddFiles(files ...*drive.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, files...)
	for _, f := range files {
		if _, ok := s.permissions[f.Id]; !ok {
			s.permissions[f.Id] = nil
		}
	}
}

// AddPermissions attaches permissions to fileID, registering the file if needed.
func (s *Server) AddPermissions(fileID string, permissions ...*drive.Permission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions[fileID] = append(s.permissions[fileID], permissions...)
}

// Permissions returns the permissions currently attached to fileID.
func (s *Server) Permissions(fileID string) []*drive.Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*drive.Permission{}, s.permissions[fileID]...)
}

// SetPermissionPageSize makes permissions.list answer in pages of n entries.
func (s *Server) SetPermissionPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissionPageSize = n
}

// Fail makes every following request fail with the given HTTP status, error reason and message.
func (s *Server) Fail(code int, reason, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = &failure{code: code, reason: reason, message: message}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})

	if s.failure != nil {
		writeError(w, s.failure.code, s.failure.reason, s.failure.message)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.Method == http.MethodGet && len(parts) == 1 && parts[0] == "files":
		s.listFiles(w, r)
	case r.Method == http.MethodGet && len(parts) == 3 && parts[0] == "files" && parts[2] == "permissions":
		s.listPermissions(w, r, parts[1])
	case r.Method == http.MethodDelete && len(parts) == 4 && parts[0] == "files" && parts[2] == "permissions":
		s.deletePermission(w, parts[1], parts[3])
	default:
		writeError(w, http.StatusNotFound, "notFound", fmt.Sprintf("Unsupported request: %s %s", r.Method, r.URL.Path))
	}
}

func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	files, err := filterFiles(s.files, query.Get("q"))
	if err == nil {
		err = sortFiles(files, query.Get("orderBy"))
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid", fmt.Sprintf("Invalid Value: %v", err))
		return
	}
	start, end, next := page(len(files), query)
	writeJSON(w, &drive.FileList{
		Kind:          "drive#fileList",
		Files:         files[start:end],
		NextPageToken: next,
	})
}

var clausePattern = regexp.MustCompile(`^(\w+)\s+(=|!=|contains)\s+(.+)$`)

// filterFiles evaluates q as a conjunction of clauses on name, mimeType and trashed.
func filterFiles(files []*drive.File, q string) ([]*drive.File, error) {
	type clause struct{ field, op, value string }
	var clauses []clause
	if strings.TrimSpace(q) != "" {
		for _, c := range strings.Split(q, " and ") {
			m := clausePattern.FindStringSubmatch(strings.TrimSpace(c))
			if m == nil {
				return nil, fmt.Errorf("unsupported clause %q", c)
			}
			clauses = append(clauses, clause{field: m[1], op: m[2], value: strings.Trim(m[3], "'")})
		}
	}

	var matched []*drive.File
	for _, f := range files {
		ok := true
		for _, c := range clauses {
			var actual string
			switch c.field {
			case "name":
				actual = f.Name
			case "mimeType":
				actual = f.MimeType
			case "trashed":
				actual = strconv.FormatBool(f.Trashed)
			default:
				return nil, fmt.Errorf("unsupported field %q", c.field)
			}
			switch c.op {
			case "=":
				ok = ok && actual == c.value
			case "!=":
				ok = ok && actual != c.value
			case "contains":
				ok = ok && strings.Contains(actual, c.value)
			}
		}
		if ok {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// sortFiles orders files in place by a comma-separated list of name, modifiedTime or createdTime keys,
// each optionally followed by desc.
func sortFiles(files []*drive.File, orderBy string) error {
	if strings.TrimSpace(orderBy) == "" {
		return nil
	}
	type key struct {
		get  func(*drive.File) string
		desc bool
	}
	var keys []key
	for _, k := range strings.Split(orderBy, ",") {
		fields := strings.Fields(k)
		if len(fields) == 0 || len(fields) > 2 || (len(fields) == 2 && fields[1] != "desc") {
			return fmt.Errorf("unsupported sort key %q", k)
		}
		var get func(*drive.File) string
		switch fields[0] {
		case "name":
			get = func(f *drive.File) string { return f.Name }
		case "modifiedTime":
			get = func(f *drive.File) string { return f.ModifiedTime }
		case "createdTime":
			get = func(f *drive.File) string { return f.CreatedTime }
		default:
			return fmt.Errorf("unsupported sort key %q", k)
		}
		keys = append(keys, key{get: get, desc: len(fields) == 2})
	}
	slices.SortStableFunc(files, func(a, b *drive.File) int {
		for _, k := range keys {
			c := cmp.Compare(k.get(a), k.get(b))
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return nil
}

func (s *Server) listPermissions(w http.ResponseWriter, r *http.Request, fileID string) {
	permissions, ok := s.permissions[fileID]
	if !ok {
		writeError(w, http.StatusNotFound, "notFound", fmt.Sprintf("File not found: %s.", fileID))
		return
	}
	query := r.URL.Query()
	if s.permissionPageSize > 0 && query.Get("pageSize") == "" {
		query.Set("pageSize", strconv.Itoa(s.permissionPageSize))
	}
	start, end, next := page(len(permissions), query)
	writeJSON(w, &drive.PermissionList{
		Kind:          "drive#permissionList",
		Permissions:   permissions[start:end],
		NextPageToken: next,
	})
}

func (s *Server) deletePermission(w http.ResponseWriter, fileID, permissionID string) {
	permissions, ok := s.permissions[fileID]
	if !ok {
		writeError(w, http.StatusNotFound, "notFound", fmt.Sprintf("File not found: %s.", fileID))
		return
	}
	for i, p := range permissions {
		if p.Id == permissionID {
			s.permissions[fileID] = append(permissions[:i:i], permissions[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "notFound", fmt.Sprintf("Permission not found: %s.", permissionID))
}

// page interprets pageToken as an offset and pageSize as a limit.
func page(total int, query url.Values) (start, end int, next string) {
	start, _ = strconv.Atoi(query.Get("pageToken"))
	start = min(max(start, 0), total)
	end = total
	if size, err := strconv.Atoi(query.Get("pageSize")); err == nil && size > 0 && start+size < total {
		end = start + size
		next = strconv.Itoa(end)
	}
	return start, end, next
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"errors": []map[string]any{
				{"domain": "global", "reason": reason, "message": message},
			},
		},
	})
}
