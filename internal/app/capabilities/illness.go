package capabilities

import (
	"context"
	"fmt"
	"time"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// IllnessInsurance registers a sick-leave insurance claim with the
// operations inbox. Restricted to Gröna Lund employees.
type IllnessInsurance struct {
	mailer   domain.MailSender
	opsEmail string
}

func NewIllnessInsurance(mailer domain.MailSender, opsEmail string) *IllnessInsurance {
	return &IllnessInsurance{mailer: mailer, opsEmail: opsEmail}
}

func (c *IllnessInsurance) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "handle_illness_insurance",
		Description: "Registers a sick-leave insurance claim for an employee by collecting the full name, " +
			"email address and the first day of illness. The information is sent to Artistservice.",
		Parameters: []domain.ParameterSpec{
			{Name: "full_name", Description: "The full name of the employee."},
			{Name: "email_address", Description: "The email address of the employee."},
			{Name: "first_sick_day", Description: "The first day of illness, format YYYY-MM-DD."},
		},
	}
}

func (c *IllnessInsurance) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	if sctx.Park != domain.ParkGronaLund {
		return Outcome{Content: gronaLundOnlyMsg}
	}

	name := args.String("full_name")
	if name == "" {
		return Outcome{Content: "Vad är ditt fullständiga namn?"}
	}
	email := args.String("email_address")
	if email == "" {
		return Outcome{Content: "Vad är din mailadress?"}
	}
	rawDay := args.String("first_sick_day")
	if rawDay == "" {
		return Outcome{Content: "Vilket datum var din första sjukdag?"}
	}

	firstDay, err := time.Parse(dateLayout, rawDay)
	if err != nil {
		return Outcome{Content: "Datumet måste vara i formatet YYYY-MM-DD."}
	}

	body := fmt.Sprintf(`
        <h1>Backster: Anmälan till sjukförsäkring</h1>
        <p>Hej!</p>
        <p>%[1]s önskar anmäla sig till sjukförsäkringen. Första sjukdag är angiven till
        <span class="highlight">%[2]s</span>.</p>
        <p>Om ni vill kontakta %[1]s så har hen uppgett följande mailadress: %[3]s</p>
        <p>Med vänliga hälsningar, Backster</p>
        `, name, firstDay.Format(dateLayout), email)

	err = c.mailer.Send(ctx, domain.OutboundMail{
		To:       c.opsEmail,
		Subject:  fmt.Sprintf("Backster: Sjukförsäkringsanmälan från %s", name),
		HTMLBody: body,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("illness insurance mail failed", "error", err)
		return Outcome{Content: mailFailureMsg}
	}

	return Outcome{Content: "Jag har nu skickat din anmälan till Artistservice. Dom kommer återkoppla till dig inom kort."}
}
