package capabilities

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// DailyParkData fetches the daily data table (opening hours, guest
// forecasts) for a park and date.
type DailyParkData struct {
	client domain.ParkDataClient
}

func NewDailyParkData(client domain.ParkDataClient) *DailyParkData {
	return &DailyParkData{client: client}
}

func (c *DailyParkData) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "get_daily_park_data",
		Description: "Fetches daily information for a specific date regarding the parks. " +
			"Use this if the user asks for information related to the park's opening hours " +
			"or questions about expected, budgeted, or actual number of guests on a specific date.",
		Parameters: []domain.ParameterSpec{
			{Name: "park", Description: "The name of the park.", Enum: []string{
				string(domain.ParkGronaLund), string(domain.ParkFuruvik),
				string(domain.ParkKolmarden), string(domain.ParkSkaraSommarland),
			}, Required: true},
			{Name: "date", Description: "The date for which the information is requested, formatted as YYYY-MM-DD.", Required: true},
		},
	}
}

func (c *DailyParkData) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	date := args.String("date")
	if date == "" {
		return Outcome{Content: "Vilket datum gäller frågan? Ange datumet i formatet YYYY-MM-DD."}
	}

	parkArg := args.String("park")
	park := sctx.Park
	if parkArg != "" {
		p, err := domain.ParsePark(parkArg)
		if err != nil {
			return Outcome{Content: `{"error": "Invalid park name"}`}
		}
		park = p
	}

	payload, err := c.client.FetchDaily(ctx, park, date)
	if errors.Is(err, domain.ErrParkClosed) {
		return Outcome{Content: `{"info": "Parken är inte öppen denna dag"}`}
	}
	if err != nil {
		observability.LoggerFromContext(ctx).Error("daily park data fetch failed", "park", park, "date", date, "error", err)
		return Outcome{Content: `{"error": "Failed to retrieve data"}`}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Content: `{"error": "Failed to retrieve data"}`}
	}
	return Outcome{Content: string(raw)}
}
