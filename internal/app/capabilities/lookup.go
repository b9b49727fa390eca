package capabilities

import (
	"context"
	"strings"

	"github.com/parksandresorts/backster-agent/internal/domain"
	"github.com/parksandresorts/backster-agent/internal/observability"
)

const searchFailureMsg = "Jag kunde tyvärr inte söka i kunskapsbasen just nu. Försök igen om en stund eller kontakta Artistservice direkt."

// LookupFAQ searches the internal knowledge base with a hybrid
// lexical + vector query, filtered by park and employment eligibility.
type LookupFAQ struct {
	searcher domain.KnowledgeSearcher
}

func NewLookupFAQ(searcher domain.KnowledgeSearcher) *LookupFAQ {
	return &LookupFAQ{searcher: searcher}
}

func (c *LookupFAQ) Spec() domain.CapabilitySpec {
	return domain.CapabilitySpec{
		Name: "lookup_faq",
		Description: "Searches the company's internal knowledge base to find answers for user questions. " +
			"This tool should always be used before answering a user's question as it provides the " +
			"most relevant information regarding the employee's query.",
		Parameters: []domain.ParameterSpec{
			{Name: "query", Description: "The question or query provided by the user.", Required: true},
			{Name: "park", Description: "The name of the park for context. Must match the park data in the knowledge base."},
			{Name: "employment_type", Description: "The type of employment.", Enum: []string{string(domain.EmploymentPermanent), string(domain.EmploymentSeasonal)}},
		},
	}
}

func (c *LookupFAQ) Invoke(ctx context.Context, args Arguments, sctx domain.SessionContext) Outcome {
	query := args.String("query")
	if query == "" {
		return Outcome{Content: "Vilken fråga vill du att jag ska söka svar på?"}
	}

	// Model-supplied park/employment type win, session context fills in.
	park := sctx.Park
	if p, err := domain.ParsePark(args.String("park")); err == nil {
		park = p
	}
	employment := sctx.EmploymentType
	if e, err := domain.ParseEmploymentType(args.String("employment_type")); err == nil {
		employment = e
	}

	annual := employment == domain.EmploymentPermanent
	seasonal := employment == domain.EmploymentSeasonal

	records, err := c.searcher.Search(ctx, query, park, annual, seasonal)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("knowledge search failed", "error", err)
		return Outcome{Content: searchFailureMsg}
	}

	contents := make([]string, 0, len(records))
	citations := make([]domain.Citation, 0, len(records))
	for _, rec := range records {
		contents = append(contents, rec.Content)
		citations = append(citations, domain.Citation{
			Source:          rec.Source,
			OriginalContent: rec.OriginalContent,
		})
	}

	return Outcome{
		Content:   strings.Join(contents, "\n"),
		Citations: citations,
	}
}
