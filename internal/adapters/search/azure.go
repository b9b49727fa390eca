// Package search talks to the Azure AI Search REST API. Azure does not ship
// a Go SDK for the documents endpoint, so this adapter speaks the REST
// contract directly.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

const (
	apiVersion = "2023-11-01"
	topK       = 3
)

// AzureClient implements domain.KnowledgeSearcher with a hybrid query:
// lexical search text plus a vector query over the content embedding.
type AzureClient struct {
	endpoint string
	index    string
	apiKey   string
	httpc    *http.Client

	// embedder is optional; without it the search degrades to lexical-only.
	embedder domain.Embedder
}

func NewAzureClient(endpoint, index, apiKey string, embedder domain.Embedder) *AzureClient {
	return &AzureClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		index:    index,
		apiKey:   apiKey,
		httpc:    &http.Client{Timeout: 15 * time.Second},
		embedder: embedder,
	}
}

type vectorQuery struct {
	Kind   string    `json:"kind"`
	Vector []float32 `json:"vector"`
	Fields string    `json:"fields"`
	K      int       `json:"k"`
}

type searchRequest struct {
	Search        string        `json:"search"`
	VectorQueries []vectorQuery `json:"vectorQueries,omitempty"`
	Filter        string        `json:"filter"`
	Select        string        `json:"select"`
	Top           int           `json:"top"`
}

type searchDoc struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Park            string `json:"park"`
	Source          string `json:"source"`
	OriginalContent string `json:"original_content"`
}

type searchResponse struct {
	Value []searchDoc `json:"value"`
}

// Search implements domain.KnowledgeSearcher.
func (c *AzureClient) Search(ctx context.Context, query string, park domain.Park, annual, seasonal bool) ([]domain.KnowledgeRecord, error) {
	body := searchRequest{
		Search: query,
		Filter: buildFilter(park, annual, seasonal),
		Select: "title,content,park,source,id,original_content",
		Top:    topK,
	}

	if c.embedder != nil {
		vector, err := c.embedder.EmbedQuery(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("embedding query: %w", err)
		}
		body.VectorQueries = []vectorQuery{{
			Kind:   "vector",
			Vector: vector,
			Fields: "contentVector",
			K:      topK,
		}}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", c.endpoint, c.index, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: unexpected status %d", res.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	records := make([]domain.KnowledgeRecord, 0, len(decoded.Value))
	for _, doc := range decoded.Value {
		records = append(records, domain.KnowledgeRecord{
			ID:              doc.ID,
			Title:           doc.Title,
			Content:         doc.Content,
			Park:            domain.Park(doc.Park),
			Source:          doc.Source,
			OriginalContent: doc.OriginalContent,
		})
	}
	return records, nil
}

// buildFilter constructs the OData filter: always scoped to the park, plus
// any eligibility flags the employment type grants.
func buildFilter(park domain.Park, annual, seasonal bool) string {
	filter := fmt.Sprintf("park eq '%s'", park)

	var flags []string
	if annual {
		flags = append(flags, "annual_employee eq true")
	}
	if seasonal {
		flags = append(flags, "seasonal_employee eq true")
	}
	if len(flags) > 0 {
		filter += fmt.Sprintf(" and (%s)", strings.Join(flags, " or "))
	}
	return filter
}
