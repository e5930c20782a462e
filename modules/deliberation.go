package modules

import "context"

// Deliberation types accepted by the host.
const (
	DeliberationVoting       = "voting"
	DeliberationFeedback     = "feedback"
	DeliberationQA           = "qa"
	DeliberationSharedList   = "shared-list"
	DeliberationStatusDraft  = "draft"
	DeliberationStatusOpen   = "collecting-responses"
	DeliberationStatusVoting = "voting"
	DeliberationStatusClosed = "completed"
)

// DeliberationTypes lists the valid deliberation types.
var DeliberationTypes = []string{DeliberationVoting, DeliberationFeedback, DeliberationQA, DeliberationSharedList}

// DeliberationStatuses lists the valid deliberation statuses.
var DeliberationStatuses = []string{DeliberationStatusDraft, DeliberationStatusOpen, DeliberationStatusVoting, DeliberationStatusClosed}

// DeliberationRecord is a multi-party discussion held on the host.
type DeliberationRecord struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Type           string                 `json:"type"`
	Status         string                 `json:"status"`
	RequestMessage string                 `json:"requestMessage,omitempty"`
	CreatorID      string                 `json:"creatorId,omitempty"`
	CreatorName    string                 `json:"creatorName,omitempty"`
	Participants   []string               `json:"participants"`
	Responses      []DeliberationResponse `json:"responses,omitempty"`
	Summary        string                 `json:"summary,omitempty"`
	CreatedAt      string                 `json:"createdAt,omitempty"`
}

// DeliberationResponse is one participant's answer.
type DeliberationResponse struct {
	ID            string `json:"id"`
	ResponderID   string `json:"responderId"`
	ResponderName string `json:"responderName,omitempty"`
	Body          string `json:"body"`
	VoteCount     int    `json:"voteCount"`
}

// DeliberationVote is one recorded vote.
type DeliberationVote struct {
	ID         string `json:"id"`
	ResponseID string `json:"responseId"`
	VoterID    string `json:"voterId"`
	VoterName  string `json:"voterName,omitempty"`
}

// CreateDeliberation are the parameters of Deliberation.Create.
type CreateDeliberation struct {
	Type           string   `json:"deliberationType"`
	Title          string   `json:"title"`
	RequestMessage string   `json:"requestMessage"`
	CreatorID      string   `json:"creatorId"`
	CreatorName    string   `json:"creatorName"`
	Participants   []string `json:"participants,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// ListDeliberations filters Deliberation.List.
type ListDeliberations struct {
	Type   string `json:"deliberationType,omitempty"`
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// RespondDeliberation are the parameters of Deliberation.Respond.
type RespondDeliberation struct {
	DeliberationID string `json:"deliberationId"`
	ResponderID    string `json:"responderId"`
	ResponderName  string `json:"responderName"`
	Body           string `json:"body"`
}

// VoteDeliberation are the parameters of Deliberation.Vote.
type VoteDeliberation struct {
	DeliberationID string `json:"deliberationId"`
	ResponseID     string `json:"responseId"`
	VoterID        string `json:"voterId"`
	VoterName      string `json:"voterName"`
}

// SummarizeDeliberation are the parameters of Deliberation.Summary.
type SummarizeDeliberation struct {
	DeliberationID string `json:"deliberationId"`
	Summary        string `json:"summary"`
	AuthorID       string `json:"authorId"`
	AuthorName     string `json:"authorName"`
}

// Winner is the response with the most votes.
type Winner struct {
	Response  *DeliberationResponse `json:"winner"`
	VoteCount int                   `json:"voteCount"`
	Tie       bool                  `json:"tie,omitempty"`
}

// Deliberation manages deliberations on the host.
type Deliberation struct{ module }

type deliberationPayload struct {
	Payload struct {
		Deliberation  DeliberationRecord     `json:"deliberation"`
		Deliberations []DeliberationRecord   `json:"deliberations"`
		Total         int                    `json:"total"`
		Response      DeliberationResponse   `json:"response"`
		Vote          DeliberationVote       `json:"vote"`
		Winner        *DeliberationResponse  `json:"winner"`
		VoteCount     int                    `json:"voteCount"`
		Tie           bool                   `json:"tie"`
		Responses     []DeliberationResponse `json:"responses"`
	} `json:"payload"`
}

func (d *Deliberation) Create(ctx context.Context, params CreateDeliberation) (*DeliberationRecord, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "create", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Payload.Deliberation, nil
}

// Get returns a deliberation together with its responses.
func (d *Deliberation) Get(ctx context.Context, id string) (*DeliberationRecord, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "get", map[string]any{"id": id, "view": "full"}, &resp); err != nil {
		return nil, err
	}
	rec := resp.Payload.Deliberation
	if len(rec.Responses) == 0 {
		rec.Responses = resp.Payload.Responses
	}
	return &rec, nil
}

// List returns the matching deliberations and the total match count.
func (d *Deliberation) List(ctx context.Context, params ListDeliberations) ([]DeliberationRecord, int, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "list", params, &resp); err != nil {
		return nil, 0, err
	}
	total := resp.Payload.Total
	if total == 0 {
		total = len(resp.Payload.Deliberations)
	}
	return resp.Payload.Deliberations, total, nil
}

func (d *Deliberation) Respond(ctx context.Context, params RespondDeliberation) (*DeliberationResponse, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "respond", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Payload.Response, nil
}

func (d *Deliberation) Vote(ctx context.Context, params VoteDeliberation) (*DeliberationVote, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "vote", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Payload.Vote, nil
}

// GetWinner returns the leading response; Response is nil when nobody has voted.
func (d *Deliberation) GetWinner(ctx context.Context, id string) (*Winner, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "get-winner", map[string]any{"deliberationId": id}, &resp); err != nil {
		return nil, err
	}
	return &Winner{
		Response:  resp.Payload.Winner,
		VoteCount: resp.Payload.VoteCount,
		Tie:       resp.Payload.Tie,
	}, nil
}

func (d *Deliberation) Summary(ctx context.Context, params SummarizeDeliberation) (*DeliberationRecord, error) {
	var resp deliberationPayload
	if err := d.call(ctx, "summary", params, &resp); err != nil {
		return nil, err
	}
	rec := resp.Payload.Deliberation
	if rec.Summary == "" {
		rec.Summary = params.Summary
	}
	return &rec, nil
}
