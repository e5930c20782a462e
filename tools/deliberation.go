package tools

import (
	"context"
	"fmt"

	"github.com/codeboltai/codebolt-go/modules"
	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// DeliberationTools builds the deliberation tools.
func DeliberationTools(d Deliberations) []Tool {
	return []Tool{
		newTool("deliberation_create",
			"Start a deliberation: a question or proposal other agents respond to and vote on.",
			func(p *schemas.CreateDeliberationParams) error {
				return firstErr(
					oneOf("deliberationType", p.DeliberationType, modules.DeliberationTypes),
					required("title", p.Title),
					required("requestMessage", p.RequestMessage),
					required("creatorId", p.CreatorID),
					required("creatorName", p.CreatorName),
					optionalOneOf("status", p.Status, modules.DeliberationStatuses),
				)
			},
			func(ctx context.Context, p *schemas.CreateDeliberationParams) (Result, error) {
				rec, err := d.Create(ctx, modules.CreateDeliberation{
					Type:           p.DeliberationType,
					Title:          p.Title,
					RequestMessage: p.RequestMessage,
					CreatorID:      p.CreatorID,
					CreatorName:    p.CreatorName,
					Participants:   p.Participants,
					Status:         p.Status,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Created %s deliberation %s (status %s): %s", rec.Type, rec.ID, rec.Status, rec.Title),
					ReturnDisplay: "Created deliberation: " + rec.Title,
				}, nil
			}),

		newTool("deliberation_get",
			"Get a deliberation with its responses.",
			func(p *schemas.DeliberationIDParams) error { return required("id", p.ID) },
			func(ctx context.Context, p *schemas.DeliberationIDParams) (Result, error) {
				rec, err := d.Get(ctx, p.ID)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    jsonContent(rec),
					ReturnDisplay: fmt.Sprintf("Deliberation %s: %d responses", rec.Title, len(rec.Responses)),
				}, nil
			}),

		newTool("deliberation_list",
			"List deliberations, optionally filtered by type, status or text.",
			func(p *schemas.ListDeliberationsParams) error {
				return firstErr(
					optionalOneOf("deliberationType", p.DeliberationType, modules.DeliberationTypes),
					optionalOneOf("status", p.Status, modules.DeliberationStatuses),
					optionalRange("limit", p.Limit, 1, 100),
					inRange("offset", p.Offset, 0, 1<<31-1),
				)
			},
			func(ctx context.Context, p *schemas.ListDeliberationsParams) (Result, error) {
				list, total, err := d.List(ctx, modules.ListDeliberations{
					Type:   p.DeliberationType,
					Status: p.Status,
					Search: p.Search,
					Limit:  p.Limit,
					Offset: p.Offset,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    jsonContent(list),
					ReturnDisplay: fmt.Sprintf("Found %d deliberations", total),
				}, nil
			}),

		newTool("deliberation_respond",
			"Add a response to a deliberation.",
			func(p *schemas.RespondDeliberationParams) error {
				return firstErr(
					required("deliberationId", p.DeliberationID),
					required("responderId", p.ResponderID),
					required("body", p.Body),
				)
			},
			func(ctx context.Context, p *schemas.RespondDeliberationParams) (Result, error) {
				r, err := d.Respond(ctx, modules.RespondDeliberation{
					DeliberationID: p.DeliberationID,
					ResponderID:    p.ResponderID,
					ResponderName:  p.ResponderName,
					Body:           p.Body,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Added response %s to deliberation %s", r.ID, p.DeliberationID),
					ReturnDisplay: "Response added",
				}, nil
			}),

		newTool("deliberation_vote",
			"Vote for a response in a deliberation.",
			func(p *schemas.VoteDeliberationParams) error {
				return firstErr(
					required("deliberationId", p.DeliberationID),
					required("responseId", p.ResponseID),
					required("voterId", p.VoterID),
				)
			},
			func(ctx context.Context, p *schemas.VoteDeliberationParams) (Result, error) {
				v, err := d.Vote(ctx, modules.VoteDeliberation{
					DeliberationID: p.DeliberationID,
					ResponseID:     p.ResponseID,
					VoterID:        p.VoterID,
					VoterName:      p.VoterName,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Recorded vote %s for response %s", v.ID, p.ResponseID),
					ReturnDisplay: "Vote recorded",
				}, nil
			}),

		newTool("deliberation_get_winner",
			"Get the response with the most votes.",
			func(p *schemas.DeliberationIDParams) error { return required("id", p.ID) },
			func(ctx context.Context, p *schemas.DeliberationIDParams) (Result, error) {
				w, err := d.GetWinner(ctx, p.ID)
				if err != nil {
					return Result{}, err
				}
				if w.Response == nil {
					return Result{LLMContent: "No votes have been cast yet", ReturnDisplay: "No winner yet"}, nil
				}
				content := fmt.Sprintf("Winning response %s by %s with %d votes:\n%s", w.Response.ID, w.Response.ResponderID, w.VoteCount, w.Response.Body)
				if w.Tie {
					content += "\n(tied with another response)"
				}
				return Result{
					LLMContent:    content,
					ReturnDisplay: fmt.Sprintf("Winner: %s (%d votes)", w.Response.ID, w.VoteCount),
				}, nil
			}),

		newTool("deliberation_summary",
			"Record the final summary of a deliberation.",
			func(p *schemas.SummarizeDeliberationParams) error {
				return firstErr(
					required("deliberationId", p.DeliberationID),
					required("summary", p.Summary),
					required("authorId", p.AuthorID),
				)
			},
			func(ctx context.Context, p *schemas.SummarizeDeliberationParams) (Result, error) {
				rec, err := d.Summary(ctx, modules.SummarizeDeliberation{
					DeliberationID: p.DeliberationID,
					Summary:        p.Summary,
					AuthorID:       p.AuthorID,
					AuthorName:     p.AuthorName,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Summary recorded for deliberation %s (status %s)", rec.ID, rec.Status),
					ReturnDisplay: "Summary recorded",
				}, nil
			}),
	}
}
