package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sketchkit/sketch/pkg/cache"
)

const testScene = `
title = "Server Scene"
width = 100
height = 100

[[items]]
type = "fill"
color = [255, 0, 0]

[[items]]
type = "rect"
origin = [10, 10]
width = 20
height = 20
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	ts := httptest.NewServer(NewHandler(logger, cache.NewNullCache()))
	t.Cleanup(ts.Close)
	return ts
}

func createScene(t *testing.T, ts *httptest.Server, body string) string {
	t.Helper()
	resp, err := http.Post(ts.URL+"/scenes", "application/toml", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST status = %d, body: %s", resp.StatusCode, raw)
	}

	var out struct {
		ID    string `json:"id"`
		Items int    `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if out.ID == "" {
		t.Fatal("empty scene id")
	}
	return out.ID
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateAndRenderSVG(t *testing.T) {
	ts := newTestServer(t)
	id := createScene(t, ts, testScene)

	resp, err := http.Get(ts.URL + "/scenes/" + id + ".svg")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}

	svg, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"<svg", "Server Scene", `fill="#FF0000"`} {
		if !strings.Contains(string(svg), want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestCreateInvalidScene(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/scenes", "application/toml",
		strings.NewReader("[[items]]\ntype = \"circle\""))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderUnknownScene(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/scenes/not-a-real-id.svg")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRenderPNGWithoutConverter(t *testing.T) {
	// Without rsvg-convert on PATH the PNG route degrades to a clear error.
	t.Setenv("PATH", t.TempDir())

	ts := newTestServer(t)
	id := createScene(t, ts, testScene)

	resp, err := http.Get(ts.URL + "/scenes/" + id + ".png")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "librsvg") {
		t.Errorf("body should carry remediation hint, got: %s", body)
	}
}
