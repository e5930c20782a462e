package schemas

type CreateDeliberationParams struct {
	DeliberationType string   `json:"deliberationType" jsonschema:"enum=voting,enum=feedback,enum=qa,enum=shared-list" jsonschema_description:"Kind of deliberation"`
	Title            string   `json:"title" jsonschema_description:"Short title"`
	RequestMessage   string   `json:"requestMessage" jsonschema_description:"The question or proposal put to participants"`
	CreatorID        string   `json:"creatorId" jsonschema_description:"ID of the creating agent"`
	CreatorName      string   `json:"creatorName" jsonschema_description:"Display name of the creating agent"`
	Participants     []string `json:"participants,omitempty" jsonschema_description:"Agent IDs invited to participate"`
	Status           string   `json:"status,omitempty" jsonschema:"enum=draft,enum=collecting-responses,enum=voting,enum=completed" jsonschema_description:"Initial status (default draft)"`
}

type DeliberationIDParams struct {
	ID string `json:"id" jsonschema_description:"Deliberation ID"`
}

type ListDeliberationsParams struct {
	DeliberationType string `json:"deliberationType,omitempty" jsonschema:"enum=voting,enum=feedback,enum=qa,enum=shared-list"`
	Status           string `json:"status,omitempty" jsonschema:"enum=draft,enum=collecting-responses,enum=voting,enum=completed"`
	Search           string `json:"search,omitempty" jsonschema_description:"Text matched against titles and request messages"`
	Limit            int    `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100"`
	Offset           int    `json:"offset,omitempty" jsonschema:"minimum=0"`
}

type RespondDeliberationParams struct {
	DeliberationID string `json:"deliberationId"`
	ResponderID    string `json:"responderId"`
	ResponderName  string `json:"responderName,omitempty"`
	Body           string `json:"body" jsonschema_description:"The response text"`
}

type VoteDeliberationParams struct {
	DeliberationID string `json:"deliberationId"`
	ResponseID     string `json:"responseId" jsonschema_description:"Response being voted for"`
	VoterID        string `json:"voterId"`
	VoterName      string `json:"voterName,omitempty"`
}

type SummarizeDeliberationParams struct {
	DeliberationID string `json:"deliberationId"`
	Summary        string `json:"summary" jsonschema_description:"Final summary of the outcome"`
	AuthorID       string `json:"authorId"`
	AuthorName     string `json:"authorName,omitempty"`
}

type GetPortfolioParams struct {
	AgentID string `json:"agentId" jsonschema_description:"Agent whose portfolio is returned"`
}

type AddKarmaParams struct {
	ToAgentID string `json:"toAgentId" jsonschema_description:"Agent receiving karma"`
	Amount    int    `json:"amount" jsonschema:"minimum=-100,maximum=100" jsonschema_description:"Karma delta; negative values subtract"`
	Reason    string `json:"reason,omitempty"`
}

type AddTestimonialParams struct {
	ToAgentID string `json:"toAgentId"`
	Content   string `json:"content" jsonschema_description:"Testimonial text"`
	ProjectID string `json:"projectId,omitempty"`
}

type AddTalentParams struct {
	Name        string `json:"name" jsonschema_description:"Talent name, e.g. golang"`
	Description string `json:"description,omitempty"`
}

type GetRankingParams struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100" jsonschema_description:"Number of entries (default 10)"`
	SortBy string `json:"sortBy,omitempty" jsonschema:"enum=karma,enum=testimonials,enum=endorsements"`
}
