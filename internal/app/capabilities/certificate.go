package capabilities

import (
	"context"
	"fmt"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// WorkCertificateRequest asks the operations inbox to issue one of the two
// certificate types an employee can request.
type WorkCertificateRequest struct {
	mailer   domain.MailSender
	opsEmail string
}

func NewWorkCertificateRequest(mailer domain.MailSender, opsEmail string) *WorkCertificateRequest {
	return &WorkCertificateRequest{mailer: mailer, opsEmail: opsEmail}
}

func (c *WorkCertificateRequest) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "handle_work_certificate_request",
		Description: "Requests a work certificate for an employee. Collects the full name, email address and " +
			"which certificate type is wanted, then sends the request to Artistservice.",
		Parameters: []domain.ParameterSpec{
			{Name: "full_name", Description: "The full name of the employee."},
			{Name: "email_address", Description: "The email address of the employee."},
			{Name: "certificate_type", Description: "The type of certificate requested.", Enum: []string{
				string(domain.CertificateEmployer), string(domain.CertificateService),
			}},
		},
	}
}

func (c *WorkCertificateRequest) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	name := args.String("full_name")
	if name == "" {
		return Outcome{Content: "Vad är ditt fullständiga namn?"}
	}
	email := args.String("email_address")
	if email == "" {
		return Outcome{Content: "Vad är din mailadress?"}
	}
	rawType := args.String("certificate_type")
	if rawType == "" {
		return Outcome{Content: "Vilken typ av intyg vill du ha? Jag kan hjälpa till med Arbetsgivarintyg eller Tjänstgöringsintyg."}
	}

	certType, err := domain.ParseCertificateType(rawType)
	if err != nil {
		return Outcome{Content: "Jag kan bara hjälpa till med Arbetsgivarintyg eller Tjänstgöringsintyg. Vilket av dem vill du ha?"}
	}

	body := fmt.Sprintf(`
        <h1>Backster: Begäran om intyg</h1>
        <p>Hej!</p>
        <p>%[1]s önskar få ett <span class="highlight">%[2]s</span> utfärdat.</p>
        <p>Intyget kan skickas till följande mailadress: %[3]s</p>
        <p>Med vänliga hälsningar, Backster</p>
        `, name, certType, email)

	err = c.mailer.Send(ctx, domain.OutboundMail{
		To:       c.opsEmail,
		Subject:  fmt.Sprintf("Backster: %s önskar %s", name, certType),
		HTMLBody: body,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("work certificate mail failed", "error", err)
		return Outcome{Content: mailFailureMsg}
	}

	return Outcome{Content: fmt.Sprintf("Jag har nu skickat din begäran om %s till Artistservice. Intyget skickas till %s inom kort.", certType, email)}
}
