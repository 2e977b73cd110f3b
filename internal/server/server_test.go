package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/observability"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ds := &data.Dataset{States: []data.Record{
		{State: "Texas", Abbrev: "TX", Count: 4000, MaleCount: 3500, Population: 29000000},
		{State: "Vermont", Abbrev: "VT", Count: 100, MaleCount: 70, Population: 620000},
		{State: "New_York", Abbrev: "NY", Count: 900, MaleCount: 800, Population: 19000000},
	}}
	ts := httptest.NewServer(New(ds, nil, nil))
	t.Cleanup(func() {
		ts.Close()
		observability.Reset()
	})
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestChartSVG(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/chart.svg?brushed=Texas&width=800&height=500")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if _, err := uuid.Parse(resp.Header.Get(renderIDHeader)); err != nil {
		t.Errorf("render id %q: %v", resp.Header.Get(renderIDHeader), err)
	}
	if strings.Count(body, `class="highlight"`) != 1 {
		t.Error("want exactly one highlight")
	}
	if !strings.Contains(body, `viewBox="0 0 800 500"`) {
		t.Error("size from query not applied")
	}

	_, body = get(t, ts, "/chart.svg?brushed=Nowhere")
	if strings.Contains(body, `class="highlight"`) {
		t.Error("unknown state highlighted")
	}
}

func TestChartRenderIDsDiffer(t *testing.T) {
	ts := testServer(t)
	a, _ := get(t, ts, "/chart.svg")
	b, _ := get(t, ts, "/chart.svg")
	if a.Header.Get(renderIDHeader) == b.Header.Get(renderIDHeader) {
		t.Error("render ids repeat")
	}
}

func TestChartBadQuery(t *testing.T) {
	ts := testServer(t)
	tests := []string{
		"/chart.svg?width=wide",
		"/chart.svg?height=-3",
		"/chart.json?width=20000",
	}
	for _, path := range tests {
		resp, body := get(t, ts, path)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, resp.StatusCode)
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(body), &payload); err != nil || payload["error"] == nil {
			t.Errorf("%s: body = %s", path, body)
		}
	}
}

func TestEntriesJSON(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts, "/entries.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var entries []map[string]any
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0]["name"] != "Vermont" {
		t.Errorf("entries = %v", entries)
	}
}

func TestDatasetJSON(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts, "/dataset.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var ds data.Dataset
	if err := json.Unmarshal([]byte(body), &ds); err != nil {
		t.Fatal(err)
	}
	if len(ds.States) != 3 || ds.States[2].State != "New_York" {
		t.Errorf("dataset = %+v", ds)
	}
}

func TestChartJSON(t *testing.T) {
	ts := testServer(t)
	_, body := get(t, ts, "/chart.json?brushed=New_York")
	var doc struct {
		Width float64 `json:"width"`
	}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Width != 960 {
		t.Errorf("width = %v", doc.Width)
	}
	if !strings.Contains(body, "highlight") {
		t.Error("brushed New_York not highlighted")
	}
}

func TestIndex(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts, "/?brushed=Vermont")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"<svg", "?brushed=New%20York", `class="brushed">Vermont`, "<title>Gun Deaths"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"states":3`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}

	get(t, ts, "/chart.svg?brushed=Texas")
	_, metrics := get(t, ts, "/metrics")
	for _, want := range []string{
		`statebars_renders_total{highlighted="true"} 1`,
		`statebars_http_requests_total{method="GET",route="/chart.svg",status="200"} 1`,
		"statebars_render_entries 3",
	} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
	if strings.Contains(metrics, `statebars_renders_skipped_total{reason="no-data"}`) {
		t.Error("brushed request recorded a skipped pass")
	}
}

func TestNotFound(t *testing.T) {
	ts := testServer(t)
	resp, _ := get(t, ts, "/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
