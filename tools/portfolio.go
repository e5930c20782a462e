package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/modules"
	"github.com/codeboltai/codebolt-go/tools/schemas"
)

const defaultRankingLimit = 10

// PortfolioTools builds the agent portfolio tools.
func PortfolioTools(p Portfolios) []Tool {
	return []Tool{
		newTool("portfolio_get",
			"Get an agent's portfolio: karma, talents and testimonials.",
			func(a *schemas.GetPortfolioParams) error { return required("agentId", a.AgentID) },
			func(ctx context.Context, a *schemas.GetPortfolioParams) (Result, error) {
				pf, err := p.Get(ctx, a.AgentID)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    jsonContent(pf),
					ReturnDisplay: fmt.Sprintf("Portfolio of %s: %d karma", pf.AgentID, pf.Karma),
				}, nil
			}),

		newTool("portfolio_add_karma",
			"Give or take karma from another agent.",
			func(a *schemas.AddKarmaParams) error {
				if err := required("toAgentId", a.ToAgentID); err != nil {
					return err
				}
				if a.Amount == 0 {
					return fmt.Errorf("amount must not be zero")
				}
				return inRange("amount", a.Amount, -100, 100)
			},
			func(ctx context.Context, a *schemas.AddKarmaParams) (Result, error) {
				karma, err := p.AddKarma(ctx, a.ToAgentID, a.Amount, a.Reason)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Added %d karma to %s. New karma: %d", a.Amount, a.ToAgentID, karma),
					ReturnDisplay: fmt.Sprintf("Karma %+d for %s", a.Amount, a.ToAgentID),
				}, nil
			}),

		newTool("portfolio_add_testimonial",
			"Leave a testimonial for another agent.",
			func(a *schemas.AddTestimonialParams) error {
				return firstErr(required("toAgentId", a.ToAgentID), required("content", a.Content))
			},
			func(ctx context.Context, a *schemas.AddTestimonialParams) (Result, error) {
				tm, err := p.AddTestimonial(ctx, a.ToAgentID, a.Content, a.ProjectID)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Added testimonial %s for %s", tm.ID, a.ToAgentID),
					ReturnDisplay: "Testimonial added",
				}, nil
			}),

		newTool("portfolio_add_talent",
			"Advertise a talent in your own portfolio.",
			func(a *schemas.AddTalentParams) error { return required("name", a.Name) },
			func(ctx context.Context, a *schemas.AddTalentParams) (Result, error) {
				tl, err := p.AddTalent(ctx, a.Name, a.Description)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Added talent %s (%s)", tl.Name, tl.ID),
					ReturnDisplay: "Talent added: " + tl.Name,
				}, nil
			}),

		newTool("portfolio_get_ranking",
			"Get the agent ranking.",
			func(a *schemas.GetRankingParams) error {
				return firstErr(
					optionalRange("limit", a.Limit, 1, 100),
					optionalOneOf("sortBy", a.SortBy, modules.RankingSortKeys),
				)
			},
			func(ctx context.Context, a *schemas.GetRankingParams) (Result, error) {
				limit, sortBy := a.Limit, a.SortBy
				if limit == 0 {
					limit = defaultRankingLimit
				}
				if sortBy == "" {
					sortBy = modules.RankingByKarma
				}
				ranking, err := p.GetRanking(ctx, limit, sortBy)
				if err != nil {
					return Result{}, err
				}
				var b strings.Builder
				for _, e := range ranking {
					name := e.AgentName
					if name == "" {
						name = e.AgentID
					}
					fmt.Fprintf(&b, "%d. %s (%d karma)\n", e.Rank, name, e.Karma)
				}
				return Result{
					LLMContent:    b.String(),
					ReturnDisplay: fmt.Sprintf("Top %d agents by %s", len(ranking), sortBy),
				}, nil
			}),
	}
}
