package capabilities_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/parksandresorts/backster-agent/internal/app/capabilities"
	"github.com/parksandresorts/backster-agent/internal/domain"
)

func TestDailyParkDataReturnsPayload(t *testing.T) {
	client := &fakeParkData{payload: map[string]any{"openingHours": "10-20", "expectedGuests": float64(12000)}}
	cap := capabilities.NewDailyParkData(client)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"park": string(domain.ParkGronaLund),
		"date": "2025-07-01",
	}, gronaLundCtx())

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out.Content), &decoded); err != nil {
		t.Fatalf("expected JSON content, got %q: %v", out.Content, err)
	}
	if decoded["openingHours"] != "10-20" {
		t.Fatalf("unexpected payload: %v", decoded)
	}
	if client.gotPark != domain.ParkGronaLund || client.gotDate != "2025-07-01" {
		t.Fatalf("unexpected fetch args: %q %q", client.gotPark, client.gotDate)
	}
}

func TestDailyParkDataClosedDay(t *testing.T) {
	client := &fakeParkData{err: domain.ErrParkClosed}
	cap := capabilities.NewDailyParkData(client)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"park": string(domain.ParkSkaraSommarland),
		"date": "2025-01-01",
	}, gronaLundCtx())

	if out.Content != `{"info": "Parken är inte öppen denna dag"}` {
		t.Fatalf("expected closed sentinel, got %q", out.Content)
	}
}

func TestDailyParkDataFetchFailure(t *testing.T) {
	client := &fakeParkData{err: errBoom}
	cap := capabilities.NewDailyParkData(client)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"park": string(domain.ParkFuruvik),
		"date": "2025-07-01",
	}, gronaLundCtx())

	if out.Content != `{"error": "Failed to retrieve data"}` {
		t.Fatalf("expected failure sentinel, got %q", out.Content)
	}
}

func TestDailyParkDataInvalidParkName(t *testing.T) {
	client := &fakeParkData{}
	cap := capabilities.NewDailyParkData(client)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"park": "Liseberg",
		"date": "2025-07-01",
	}, gronaLundCtx())

	if out.Content != `{"error": "Invalid park name"}` {
		t.Fatalf("expected invalid park error, got %q", out.Content)
	}
	if client.calls != 0 {
		t.Fatalf("expected no fetch")
	}
}

func TestDailyParkDataMissingDateAsksForIt(t *testing.T) {
	client := &fakeParkData{}
	cap := capabilities.NewDailyParkData(client)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"park": string(domain.ParkGronaLund),
	}, gronaLundCtx())

	if out.Content != "Vilket datum gäller frågan? Ange datumet i formatet YYYY-MM-DD." {
		t.Fatalf("expected clarification, got %q", out.Content)
	}
	if client.calls != 0 {
		t.Fatalf("expected no fetch")
	}
}

func TestDailyParkDataSameInputsSameClassification(t *testing.T) {
	client := &fakeParkData{err: domain.ErrParkClosed}
	cap := capabilities.NewDailyParkData(client)

	args := capabilities.Arguments{
		"park": string(domain.ParkKolmarden),
		"date": "2025-02-01",
	}

	first := cap.Invoke(context.Background(), args, gronaLundCtx())
	second := cap.Invoke(context.Background(), args, gronaLundCtx())

	if first.Content != second.Content {
		t.Fatalf("expected identical classification, got %q then %q", first.Content, second.Content)
	}
}
