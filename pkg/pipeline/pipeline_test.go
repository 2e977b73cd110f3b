package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/errors"
	dataio "github.com/matzehuels/statebars/pkg/io"
	"github.com/matzehuels/statebars/pkg/observability"
)

func dataset() *data.Dataset {
	return &data.Dataset{States: []data.Record{
		{State: "Texas", Abbrev: "TX", Count: 4000, MaleCount: 3500, Population: 29000000},
		{State: "Vermont", Abbrev: "VT", Count: 100, MaleCount: 70, Population: 620000},
	}}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "json", "entries"}, false},
		{nil, false},
		{[]string{"png"}, true},
		{[]string{"SVG"}, true}, // case-sensitive
		{[]string{""}, true},
	}
	for _, tt := range tests {
		err := ValidateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("size = %vx%v", o.Width, o.Height)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("formats = %v", o.Formats)
	}
	if o.Logger == nil {
		t.Error("logger not set")
	}

	bad := Options{Width: -1}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidDimensions) {
		t.Errorf("negative width err = %v", err)
	}
	bad = Options{Formats: []string{"gif"}}
	if err := bad.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format err = %v", err)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), dataset(), Options{
		Formats: []string{FormatSVG, FormatJSON, FormatEntries},
		Brushed: "Texas",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Stats.Entries != 2 || !res.Stats.Highlighted {
		t.Errorf("stats = %+v", res.Stats)
	}
	if len(res.Artifacts) != 3 {
		t.Fatalf("artifacts = %d, want 3", len(res.Artifacts))
	}

	svg := res.Artifacts[FormatSVG]
	for _, want := range []string{"<svg", `class="highlight"`, "Gun Deaths by State (Per 100k)", `class="tooltip"`} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg missing %q", want)
		}
	}

	var entries []map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatEntries], &entries); err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 || entries[0]["name"] != "Vermont" {
		t.Errorf("entries = %v", entries)
	}

	var scene map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &scene); err != nil {
		t.Fatalf("scene json: %v", err)
	}
	if scene["width"] != 960.0 {
		t.Errorf("scene width = %v", scene["width"])
	}
}

func TestExecuteOverrides(t *testing.T) {
	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), dataset(), Options{
		Width:      500,
		Height:     300,
		Title:      "Custom",
		NoTooltips: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	svg := res.Artifacts[FormatSVG]
	if !bytes.Contains(svg, []byte("Custom")) {
		t.Error("title override missing")
	}
	if bytes.Contains(svg, []byte(`class="tooltip"`)) {
		t.Error("tooltips rendered despite NoTooltips")
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 500 300"`)) {
		t.Error("size override missing")
	}
	if r.Renderer.Options.Title == "Custom" {
		t.Error("title override leaked into the shared renderer")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil, nil)
	ds := dataset()
	opts := Options{Brushed: "Vermont"}
	a, err := r.Execute(context.Background(), ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("identical runs produced different SVG")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil)
	if _, err := r.Execute(context.Background(), nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil dataset err = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Execute(ctx, dataset(), Options{}); !errors.Is(err, errors.ErrCodeCanceled) {
		t.Errorf("canceled err = %v", err)
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.json")
	raw, _ := json.Marshal(dataset())
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil)
	res, err := r.Run(context.Background(), Options{Input: path, Formats: []string{FormatEntries}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stats.Entries != 2 {
		t.Errorf("entries = %d", res.Stats.Entries)
	}

	_, err = r.Run(context.Background(), Options{Input: filepath.Join(t.TempDir(), "none.json")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing input err = %v", err)
	}
}

func TestRunRemote(t *testing.T) {
	raw, _ := json.Marshal(dataset())
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(raw)
	}))
	defer ts.Close()

	res, err := NewRunner(nil, nil).Run(context.Background(), Options{Input: ts.URL + "/states.json"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stats.Entries != 2 {
		t.Errorf("entries = %d", res.Stats.Entries)
	}
}

func TestExecuteNonFinitePopulation(t *testing.T) {
	ds, err := dataio.ReadJSON(strings.NewReader(`{"states": [
		{"state": "Texas", "abreviation": "TX", "count": 4000, "male_count": 3500, "population": 29000000},
		{"state": "Nowhere", "abreviation": "NW", "count": 10, "male_count": 5, "population": "NaN"}
	]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	formats := []string{FormatSVG, FormatJSON, FormatEntries, FormatDataset}
	res, err := NewRunner(nil, nil).Execute(context.Background(), ds, Options{Formats: formats})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, f := range formats {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("%s artifact is empty", f)
		}
	}
	if !bytes.Contains(res.Artifacts[FormatEntries], []byte(`"invalid": true`)) {
		t.Errorf("entries missing invalid flag: %s", res.Artifacts[FormatEntries])
	}
}

func TestExecuteDataset(t *testing.T) {
	res, err := NewRunner(nil, nil).Execute(context.Background(), dataset(), Options{Formats: []string{FormatDataset}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	back, err := dataio.ReadJSON(bytes.NewReader(res.Artifacts[FormatDataset]))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(back.States) != 2 || back.States[0] != dataset().States[0] {
		t.Errorf("dataset = %+v", back.States)
	}
}

type passHooks struct {
	observability.NoopRenderHooks
	started int
	skipped []string
}

func (h *passHooks) OnRenderStart(int, float64, float64) { h.started++ }
func (h *passHooks) OnRenderComplete(int, bool, time.Duration) {}
func (h *passHooks) OnRenderSkipped(reason string) { h.skipped = append(h.skipped, reason) }

func TestExecuteBrushedSinglePass(t *testing.T) {
	h := &passHooks{}
	observability.SetRenderHooks(h)
	defer observability.Reset()

	_, err := NewRunner(nil, nil).Execute(context.Background(), dataset(), Options{Brushed: "Texas"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if h.started != 1 || len(h.skipped) != 0 {
		t.Errorf("started %d skipped %v, want 1 pass and no skips", h.started, h.skipped)
	}
}
