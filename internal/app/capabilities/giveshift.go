package capabilities

import (
	"context"
	"fmt"
	"time"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// GiveAwayShift offers a shift to a colleague. Unlike the other email
// capabilities, the notification goes to the colleague's own address.
type GiveAwayShift struct {
	mailer domain.MailSender
}

func NewGiveAwayShift(mailer domain.MailSender) *GiveAwayShift {
	return &GiveAwayShift{mailer: mailer}
}

func (c *GiveAwayShift) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "handle_give_away_shift",
		Description: "Helps an employee give away a work shift to a colleague. Collects the employee's full name, " +
			"the date of the shift, and the colleague's name and email address, then sends the shift offer " +
			"directly to the colleague.",
		Parameters: []domain.ParameterSpec{
			{Name: "full_name", Description: "The full name of the employee giving away the shift."},
			{Name: "shift_date", Description: "The date of the shift, format YYYY-MM-DD."},
			{Name: "colleague_name", Description: "The full name of the colleague receiving the offer."},
			{Name: "colleague_email", Description: "The email address of the colleague receiving the offer."},
		},
	}
}

func (c *GiveAwayShift) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	name := args.String("full_name")
	if name == "" {
		return Outcome{Content: "Vad är ditt fullständiga namn?"}
	}
	rawDate := args.String("shift_date")
	if rawDate == "" {
		return Outcome{Content: "Vilket datum gäller passet som du vill ge bort?"}
	}
	colleague := args.String("colleague_name")
	if colleague == "" {
		return Outcome{Content: "Vad heter kollegan som du vill ge passet till?"}
	}
	colleagueEmail := args.String("colleague_email")
	if colleagueEmail == "" {
		return Outcome{Content: "Vad är kollegans mailadress?"}
	}

	shiftDate, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return Outcome{Content: "Datumet måste vara i formatet YYYY-MM-DD."}
	}

	body := fmt.Sprintf(`
        <h1>Backster: Förfrågan om att ta över ett arbetspass</h1>
        <p>Hej %[1]s!</p>
        <p>%[2]s vill ge bort sitt arbetspass den <span class="highlight">%[3]s</span> och undrar om du kan ta det.</p>
        <p>Svara %[2]s direkt, och kom ihåg att passbytet måste godkännas av er schemaläggare.</p>
        <p>Med vänliga hälsningar, Backster</p>
        `, colleague, name, shiftDate.Format(dateLayout))

	err = c.mailer.Send(ctx, domain.OutboundMail{
		To:       colleagueEmail,
		Subject:  fmt.Sprintf("Backster: %s vill ge bort ett arbetspass", name),
		HTMLBody: body,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("give away shift mail failed", "error", err)
		return Outcome{Content: "Jag kunde tyvärr inte skicka förfrågan till din kollega. Vänligen försök igen senare eller kontakta kollegan direkt."}
	}

	return Outcome{Content: fmt.Sprintf("Jag har nu skickat en förfrågan till %s. Kom ihåg att passbytet också måste godkännas av er schemaläggare.", colleague)}
}
