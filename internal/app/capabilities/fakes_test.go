package capabilities_test

import (
	"context"
	"errors"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

type fakeMailer struct {
	sent []domain.OutboundMail
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, mail domain.OutboundMail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mail)
	return nil
}

type fakeSearcher struct {
	records []domain.KnowledgeRecord
	err     error

	gotQuery    string
	gotPark     domain.Park
	gotAnnual   bool
	gotSeasonal bool
}

func (f *fakeSearcher) Search(ctx context.Context, query string, park domain.Park, annual, seasonal bool) ([]domain.KnowledgeRecord, error) {
	f.gotQuery = query
	f.gotPark = park
	f.gotAnnual = annual
	f.gotSeasonal = seasonal
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeParkData struct {
	payload map[string]any
	err     error

	gotPark domain.Park
	gotDate string
	calls   int
}

func (f *fakeParkData) FetchDaily(ctx context.Context, park domain.Park, date string) (map[string]any, error) {
	f.calls++
	f.gotPark = park
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

var errBoom = errors.New("boom")

func gronaLundCtx() domain.SessionContext {
	return domain.SessionContext{
		Park:           domain.ParkGronaLund,
		EmploymentType: domain.EmploymentPermanent,
		CurrentDate:    "2025-06-01",
		CurrentTime:    "10:00",
	}
}
