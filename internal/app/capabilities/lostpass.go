package capabilities

import (
	"context"
	"fmt"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

// LostBackstagePass reports a lost Backstage pass so it can be blocked and
// the employee pointed at Artistservice for a replacement.
type LostBackstagePass struct {
	mailer   domain.MailSender
	opsEmail string
}

func NewLostBackstagePass(mailer domain.MailSender, opsEmail string) *LostBackstagePass {
	return &LostBackstagePass{mailer: mailer, opsEmail: opsEmail}
}

func (c *LostBackstagePass) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "handle_lost_backstagepass",
		Description: "Handles the situation when an employee has lost their Backstage pass. " +
			"The tool will guide the employee through the process of putting together the correct " +
			"information to Artistservice. The information will be used to send an email to " +
			"Artistservice with the necessary information.",
		Parameters: []domain.ParameterSpec{
			{Name: "full_name", Description: "The full name of the employee."},
			{Name: "email_address", Description: "The email address of the employee."},
		},
	}
}

func (c *LostBackstagePass) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	name := args.String("full_name")
	if name == "" {
		return Outcome{Content: "För att skicka informationen till Artistservice behöver jag ditt fullständiga namn."}
	}
	email := args.String("email_address")
	if email == "" {
		return Outcome{Content: "För att skicka informationen till Artistservice behöver jag din mailadress."}
	}

	body := fmt.Sprintf(`
        <h1>Backster: Spärr av Backstagepass</h1>
        <p>Hej!</p>
        <p>%[1]s har tappat sitt Backstagepass och önskar att spärra det. Jag har informerat %[1]s att komma
        till Artistservice för att få ett nytt pass. Om ni vill kontakta %[1]s så har hen uppgett följande mailadress:</p>
        <p>%[2]s</p>
        <p>Med vänliga hälsningar, Backster</p>
        `, name, email)

	err := c.mailer.Send(ctx, domain.OutboundMail{
		To:       c.opsEmail,
		Subject:  fmt.Sprintf("Backster: %s önskar spärra sitt Backstagepass", name),
		HTMLBody: body,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Error("lost pass mail failed", "error", err)
		return Outcome{Content: mailFailureMsg}
	}

	return Outcome{Content: "Jag har nu skickat informationen till Artistservice. Kom in till Artistservice för att hämta ett nytt Backstagepass."}
}
