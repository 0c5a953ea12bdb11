package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hookd/internal/entity"
	"hookd/internal/httpapi"
	"hookd/internal/registry"
)

// newServerForDefs writes the given definition files into a temp dir, loads
// and applies them, and returns a test server over the full HTTP stack.
func newServerForDefs(t *testing.T, files map[string]string) (*httptest.Server, *entity.Registry) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write definition %s: %v", name, err)
		}
	}
	reg := entity.NewRegistry()
	defs, err := registry.LoadDir(dir)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	if err := registry.Apply(reg, defs); err != nil {
		t.Fatalf("apply definitions: %v", err)
	}
	srv := httptest.NewServer(httpapi.NewMux(reg))
	t.Cleanup(srv.Close)
	return srv, reg
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out := new(bytes.Buffer)
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, out.Bytes()
}
