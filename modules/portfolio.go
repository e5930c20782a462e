package modules

import "context"

// Talent is a skill an agent advertises.
type Talent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Endorsements int    `json:"endorsements,omitempty"`
}

// Testimonial is feedback left by another agent.
type Testimonial struct {
	ID          string `json:"id"`
	FromAgentID string `json:"fromAgentId,omitempty"`
	Content     string `json:"content"`
	ProjectID   string `json:"projectId,omitempty"`
}

// AgentPortfolio is an agent's reputation record.
type AgentPortfolio struct {
	AgentID      string        `json:"agentId"`
	AgentName    string        `json:"agentName,omitempty"`
	Karma        int           `json:"karma"`
	Talents      []Talent      `json:"talents,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
}

// RankingEntry is one row of the karma ranking.
type RankingEntry struct {
	Rank      int    `json:"rank"`
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName,omitempty"`
	Karma     int    `json:"karma"`
}

// Ranking sort keys.
const (
	RankingByKarma        = "karma"
	RankingByTestimonials = "testimonials"
	RankingByEndorsements = "endorsements"
)

// RankingSortKeys lists the accepted sort keys for GetRanking.
var RankingSortKeys = []string{RankingByKarma, RankingByTestimonials, RankingByEndorsements}

// Portfolio reads and updates agent portfolios on the host.
type Portfolio struct{ module }

type portfolioPayload struct {
	Payload struct {
		Portfolio   AgentPortfolio `json:"portfolio"`
		Karma       int            `json:"karma"`
		Testimonial Testimonial    `json:"testimonial"`
		Talent      Talent         `json:"talent"`
		Ranking     []RankingEntry `json:"ranking"`
	} `json:"payload"`
}

func (p *Portfolio) Get(ctx context.Context, agentID string) (*AgentPortfolio, error) {
	var resp portfolioPayload
	if err := p.call(ctx, "getPortfolio", map[string]any{"agentId": agentID}, &resp); err != nil {
		return nil, err
	}
	out := resp.Payload.Portfolio
	if out.AgentID == "" {
		out.AgentID = agentID
	}
	return &out, nil
}

// AddKarma adjusts toAgentID's karma by amount (which may be negative) and
// returns the new total.
func (p *Portfolio) AddKarma(ctx context.Context, toAgentID string, amount int, reason string) (int, error) {
	var resp portfolioPayload
	data := map[string]any{"toAgentId": toAgentID, "amount": amount, "reason": reason}
	if err := p.call(ctx, "addKarma", data, &resp); err != nil {
		return 0, err
	}
	return resp.Payload.Karma, nil
}

func (p *Portfolio) AddTestimonial(ctx context.Context, toAgentID, content, projectID string) (*Testimonial, error) {
	var resp portfolioPayload
	data := map[string]any{"toAgentId": toAgentID, "content": content, "projectId": projectID}
	if err := p.call(ctx, "addTestimonial", data, &resp); err != nil {
		return nil, err
	}
	return &resp.Payload.Testimonial, nil
}

func (p *Portfolio) AddTalent(ctx context.Context, name, description string) (*Talent, error) {
	var resp portfolioPayload
	if err := p.call(ctx, "addTalent", map[string]any{"name": name, "description": description}, &resp); err != nil {
		return nil, err
	}
	t := resp.Payload.Talent
	if t.Name == "" {
		t.Name = name
	}
	return &t, nil
}

func (p *Portfolio) GetRanking(ctx context.Context, limit int, sortBy string) ([]RankingEntry, error) {
	var resp portfolioPayload
	if err := p.call(ctx, "getRanking", map[string]any{"limit": limit, "sortBy": sortBy}, &resp); err != nil {
		return nil, err
	}
	return resp.Payload.Ranking, nil
}
