package capabilities_test

import (
	"context"
	"strings"
	"testing"

	"github.com/parksandresorts/backster-agent/internal/app/capabilities"
	"github.com/parksandresorts/backster-agent/internal/domain"
)

func TestLostBackstagePassFieldOrder(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewLostBackstagePass(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{}, gronaLundCtx())
	if out.Content != "För att skicka informationen till Artistservice behöver jag ditt fullständiga namn." {
		t.Fatalf("expected name question, got %q", out.Content)
	}

	out = cap.Invoke(context.Background(), capabilities.Arguments{"full_name": "Erik Svensson"}, gronaLundCtx())
	if out.Content != "För att skicka informationen till Artistservice behöver jag din mailadress." {
		t.Fatalf("expected email question, got %q", out.Content)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email while fields are missing")
	}
}

func TestLostBackstagePassSendsEmail(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewLostBackstagePass(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":     "Erik Svensson",
		"email_address": "erik@example.com",
	}, gronaLundCtx())

	if !strings.Contains(out.Content, "hämta ett nytt Backstagepass") {
		t.Fatalf("expected confirmation, got %q", out.Content)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].To != "ops@example.com" {
		t.Fatalf("expected one email to ops, got %+v", mailer.sent)
	}
	if !strings.Contains(mailer.sent[0].Subject, "Erik Svensson") {
		t.Fatalf("expected name in subject, got %q", mailer.sent[0].Subject)
	}
}

func TestIllnessInsuranceRestrictedToGronaLund(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewIllnessInsurance(mailer, "ops@example.com")

	sctx := gronaLundCtx()
	sctx.Park = domain.ParkSkaraSommarland

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":      "Erik Svensson",
		"email_address":  "erik@example.com",
		"first_sick_day": "2025-05-20",
	}, sctx)

	if !strings.Contains(out.Content, "Gröna Lund") {
		t.Fatalf("expected refusal, got %q", out.Content)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email")
	}
}

func TestIllnessInsuranceValidatesDate(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewIllnessInsurance(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":      "Erik Svensson",
		"email_address":  "erik@example.com",
		"first_sick_day": "igår",
	}, gronaLundCtx())

	if out.Content != "Datumet måste vara i formatet YYYY-MM-DD." {
		t.Fatalf("expected format message, got %q", out.Content)
	}
}

func TestIllnessInsuranceSendsEmail(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewIllnessInsurance(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":      "Erik Svensson",
		"email_address":  "erik@example.com",
		"first_sick_day": "2025-05-20",
	}, gronaLundCtx())

	if !strings.Contains(out.Content, "skickat din anmälan") {
		t.Fatalf("expected confirmation, got %q", out.Content)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email")
	}
	if !strings.Contains(mailer.sent[0].HTMLBody, "2025-05-20") {
		t.Fatalf("expected sick day in body")
	}
}

func TestGiveAwayShiftSendsToColleague(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewGiveAwayShift(mailer)

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":       "Erik Svensson",
		"shift_date":      "2025-07-12",
		"colleague_name":  "Sara Lind",
		"colleague_email": "sara@example.com",
	}, gronaLundCtx())

	if !strings.Contains(out.Content, "Sara Lind") {
		t.Fatalf("expected colleague name in confirmation, got %q", out.Content)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one email")
	}
	if mailer.sent[0].To != "sara@example.com" {
		t.Fatalf("expected email to colleague, got %q", mailer.sent[0].To)
	}
}

func TestGiveAwayShiftFieldOrder(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewGiveAwayShift(mailer)

	args := capabilities.Arguments{}
	questions := []string{
		"Vad är ditt fullständiga namn?",
		"Vilket datum gäller passet som du vill ge bort?",
		"Vad heter kollegan som du vill ge passet till?",
		"Vad är kollegans mailadress?",
	}
	fills := []struct{ key, val string }{
		{"full_name", "Erik Svensson"},
		{"shift_date", "2025-07-12"},
		{"colleague_name", "Sara Lind"},
		{"colleague_email", "sara@example.com"},
	}

	for i, q := range questions {
		out := cap.Invoke(context.Background(), args, gronaLundCtx())
		if out.Content != q {
			t.Fatalf("step %d: expected %q, got %q", i, q, out.Content)
		}
		args[fills[i].key] = fills[i].val
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email until complete")
	}
}

func TestWorkCertificateRejectsUnknownType(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewWorkCertificateRequest(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":        "Erik Svensson",
		"email_address":    "erik@example.com",
		"certificate_type": "Lönespecifikation",
	}, gronaLundCtx())

	if !strings.Contains(out.Content, "Arbetsgivarintyg eller Tjänstgöringsintyg") {
		t.Fatalf("expected type clarification, got %q", out.Content)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("expected no email")
	}
}

func TestWorkCertificateSendsRequest(t *testing.T) {
	mailer := &fakeMailer{}
	cap := capabilities.NewWorkCertificateRequest(mailer, "ops@example.com")

	out := cap.Invoke(context.Background(), capabilities.Arguments{
		"full_name":        "Erik Svensson",
		"email_address":    "erik@example.com",
		"certificate_type": string(domain.CertificateEmployer),
	}, gronaLundCtx())

	if !strings.Contains(out.Content, "Arbetsgivarintyg") {
		t.Fatalf("expected confirmation with type, got %q", out.Content)
	}
	if len(mailer.sent) != 1 || !strings.Contains(mailer.sent[0].Subject, "Arbetsgivarintyg") {
		t.Fatalf("expected one email with type in subject, got %+v", mailer.sent)
	}
}
