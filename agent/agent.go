package agent

// Agent describes who the runner acts as and what it may use.
type Agent struct {
	ID           string
	Name         string
	SystemPrompt string
	// Model overrides the provider's default model.
	Model     string
	MaxTokens int
	// Tools restricts the tools offered to the model; empty offers all.
	Tools []string
}

func NewAgent(id, name string) *Agent {
	return &Agent{ID: id, Name: name}
}
