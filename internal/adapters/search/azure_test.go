package search_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parksandresorts/backster-agent/internal/adapters/search"
	"github.com/parksandresorts/backster-agent/internal/domain"
)

type fixedEmbedder struct {
	vector []float32
}

func (e *fixedEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.vector, nil
}

type capturedRequest struct {
	Search        string `json:"search"`
	Filter        string `json:"filter"`
	Top           int    `json:"top"`
	VectorQueries []struct {
		Kind   string    `json:"kind"`
		Vector []float32 `json:"vector"`
		Fields string    `json:"fields"`
		K      int       `json:"k"`
	} `json:"vectorQueries"`
}

func newSearchServer(t *testing.T, captured *capturedRequest, apiKey *string, docs string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*apiKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(docs))
	}))
}

func TestSearchHybridRequest(t *testing.T) {
	var captured capturedRequest
	var apiKey string
	srv := newSearchServer(t, &captured, &apiKey, `{"value": [
		{"id": "1", "title": "Öppettider", "content": "Parken öppnar 10:00.", "park": "Gröna Lund", "source": "faq/hours.md", "original_content": "Gröna Lund öppnar klockan 10:00 varje dag under säsongen."}
	]}`)
	defer srv.Close()

	client := search.NewAzureClient(srv.URL, "knowledge", "secret-key", &fixedEmbedder{vector: []float32{0.1, 0.2}})
	records, err := client.Search(context.Background(), "öppettider", domain.ParkGronaLund, true, false)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if apiKey != "secret-key" {
		t.Fatalf("api-key header not sent: %q", apiKey)
	}
	if captured.Search != "öppettider" {
		t.Fatalf("lexical query not forwarded: %q", captured.Search)
	}
	if captured.Filter != "park eq 'Gröna Lund' and (annual_employee eq true)" {
		t.Fatalf("unexpected filter: %q", captured.Filter)
	}
	if captured.Top != 3 {
		t.Fatalf("unexpected top: %d", captured.Top)
	}
	if len(captured.VectorQueries) != 1 {
		t.Fatalf("expected one vector query, got %d", len(captured.VectorQueries))
	}
	vq := captured.VectorQueries[0]
	if vq.Kind != "vector" || vq.Fields != "contentVector" || vq.K != 3 || len(vq.Vector) != 2 {
		t.Fatalf("unexpected vector query: %+v", vq)
	}

	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != "1" || rec.Park != domain.ParkGronaLund || rec.Source != "faq/hours.md" {
		t.Fatalf("record not mapped: %+v", rec)
	}
	if rec.OriginalContent == "" {
		t.Fatalf("original content dropped: %+v", rec)
	}
}

func TestSearchWithoutEmbedderIsLexicalOnly(t *testing.T) {
	var captured capturedRequest
	var apiKey string
	srv := newSearchServer(t, &captured, &apiKey, `{"value": []}`)
	defer srv.Close()

	client := search.NewAzureClient(srv.URL, "knowledge", "secret-key", nil)
	if _, err := client.Search(context.Background(), "lön", domain.ParkFuruvik, false, true); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(captured.VectorQueries) != 0 {
		t.Fatalf("expected no vector queries without embedder: %+v", captured.VectorQueries)
	}
	if captured.Filter != "park eq 'Furuvik' and (seasonal_employee eq true)" {
		t.Fatalf("unexpected filter: %q", captured.Filter)
	}
}

func TestSearchBothEligibilityFlags(t *testing.T) {
	var captured capturedRequest
	var apiKey string
	srv := newSearchServer(t, &captured, &apiKey, `{"value": []}`)
	defer srv.Close()

	client := search.NewAzureClient(srv.URL, "knowledge", "key", nil)
	if _, err := client.Search(context.Background(), "fråga", domain.ParkKolmarden, true, true); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	want := "park eq 'Kolmården' and (annual_employee eq true or seasonal_employee eq true)"
	if captured.Filter != want {
		t.Fatalf("unexpected filter: %q", captured.Filter)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := search.NewAzureClient(srv.URL, "knowledge", "wrong-key", nil)
	if _, err := client.Search(context.Background(), "fråga", domain.ParkGronaLund, true, false); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
