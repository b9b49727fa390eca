package capabilities

import (
	"context"
	"fmt"
	"time"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

const (
	dateLayout = "2006-01-02"

	mailFailureMsg = "Jag kunde tyvärr inte skicka informationen till Artistservice. Vänligen försök igen senare eller kontakta Artistservice direkt."

	gronaLundOnlyMsg = "Den här tjänsten kan tyvärr bara användas av medarbetare på Gröna Lund. Vänligen kontakta Artistservice för hjälp med ditt ärende."
)

// Resignation files a resignation notice with the operations inbox.
// Restricted to Gröna Lund employees; minimum notice period is 14 days.
type Resignation struct {
	mailer   domain.MailSender
	opsEmail string
	now      func() time.Time
}

func NewResignation(mailer domain.MailSender, opsEmail string) *Resignation {
	return &Resignation{
		mailer:   mailer,
		opsEmail: opsEmail,
		now:      time.Now,
	}
}

func (c *Resignation) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "handle_resignation",
		Description: "Handles the resignation process for an employee by asking for the full name, resignation date, " +
			"email adress and reason. When the employee is asking for resignation, it's important to inform the " +
			"employee that it has a minimum notice period of 14 days.",
		Parameters: []domain.ParameterSpec{
			{Name: "employee_name", Description: "The full name of the employee."},
			{Name: "email_adress", Description: "The email address of the employee."},
			{Name: "resignation_date", Description: "The date on which the resignation should take effect, format YYYY-MM-DD."},
			{Name: "reason", Description: "The reason for resignation."},
		},
	}
}

func (c *Resignation) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	if sctx.Park != domain.ParkGronaLund {
		return Outcome{Content: gronaLundOnlyMsg}
	}

	name := args.String("employee_name")
	if name == "" {
		return Outcome{Content: "Vad är ditt fullständiga namn?"}
	}
	email := args.String("email_adress")
	if email == "" {
		return Outcome{Content: "Vad är din mailadress?"}
	}
	rawDate := args.String("resignation_date")
	if rawDate == "" {
		return Outcome{Content: "Vilket datum vill du att uppsägningen ska gälla från?"}
	}
	reason := args.String("reason")
	if reason == "" {
		return Outcome{Content: "Vad är anledningen till att du vill säga upp dig?"}
	}

	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return Outcome{Content: "Datumet måste vara i formatet YYYY-MM-DD."}
	}
	if !date.After(c.now().AddDate(0, 0, 14)) {
		return Outcome{Content: "Uppsägningen kan inte göras tidigare än 14 dagar från idag."}
	}

	body := fmt.Sprintf(`
        <h1>Backster: Uppsägning av anställning</h1>
        <p>Hej!</p>
        <p>Jag har mottagit en anmälan om uppsägning från <span class="highlight">%[1]s</span> med kontaktuppgifter:
        <span class="highlight">%[2]s</span>.</p>
        <p>%[1]s önskar att säga upp sig och har angett att sista arbetsdagen ska vara <span class="highlight">%[3]s</span>.</p>
        <p>Angiven anledning till uppsägningen är: <span class="highlight">%[4]s</span>.</p>
        <p>Vänligen kontakta %[1]s för ytterligare frågor eller för att bekräfta uppsägningen.</p>
        <p>Med vänliga hälsningar,</p>
        <p>Backster</p>
        `, name, email, date.Format(dateLayout), reason)

	err = c.mailer.Send(ctx, domain.OutboundMail{
		To:       c.opsEmail,
		Subject:  fmt.Sprintf("Backster: Uppsägning från %s", name),
		HTMLBody: body,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("resignation mail failed", "error", err)
		return Outcome{Content: mailFailureMsg}
	}

	return Outcome{Content: "Jag har nu skickat informationen till Artistservice. Dom kommer återkoppla till dig inom kort."}
}
