package tools

import (
	"context"
	"encoding/json"

	"github.com/codeboltai/codebolt-go/modules"
)

// FileSystem is the part of modules.FS the file tools use.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path, content string) error
	ListFiles(ctx context.Context, path string, recursive bool) ([]modules.FileEntry, error)
	DeleteFile(ctx context.Context, path string) error
	SearchFiles(ctx context.Context, path, regex, filePattern string) ([]modules.SearchMatch, error)
}

// VersionControl is the part of modules.Git the git tools use.
type VersionControl interface {
	Status(ctx context.Context) (*modules.GitStatus, error)
	Diff(ctx context.Context, ref string) (string, error)
	Commit(ctx context.Context, message string) (*modules.GitCommit, error)
	Log(ctx context.Context, limit int) ([]modules.GitCommit, error)
}

// Shell is the part of modules.Terminal the terminal tool uses.
type Shell interface {
	ExecuteCommand(ctx context.Context, command string, returnEmptyStringOnSuccess bool) (*modules.CommandResult, error)
}

type Deliberations interface {
	Create(ctx context.Context, params modules.CreateDeliberation) (*modules.DeliberationRecord, error)
	Get(ctx context.Context, id string) (*modules.DeliberationRecord, error)
	List(ctx context.Context, params modules.ListDeliberations) ([]modules.DeliberationRecord, int, error)
	Respond(ctx context.Context, params modules.RespondDeliberation) (*modules.DeliberationResponse, error)
	Vote(ctx context.Context, params modules.VoteDeliberation) (*modules.DeliberationVote, error)
	GetWinner(ctx context.Context, id string) (*modules.Winner, error)
	Summary(ctx context.Context, params modules.SummarizeDeliberation) (*modules.DeliberationRecord, error)
}

type Portfolios interface {
	Get(ctx context.Context, agentID string) (*modules.AgentPortfolio, error)
	AddKarma(ctx context.Context, toAgentID string, amount int, reason string) (int, error)
	AddTestimonial(ctx context.Context, toAgentID, content, projectID string) (*modules.Testimonial, error)
	AddTalent(ctx context.Context, name, description string) (*modules.Talent, error)
	GetRanking(ctx context.Context, limit int, sortBy string) ([]modules.RankingEntry, error)
}

type Todos interface {
	Add(ctx context.Context, params modules.AddTodo) (*modules.TodoItem, error)
	Update(ctx context.Context, params modules.UpdateTodo) (*modules.TodoItem, error)
	List(ctx context.Context, status string) ([]modules.TodoItem, error)
}

// KeyValueStore is the part of modules.Memory the memory tools use.
type KeyValueStore interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
}

type Browser interface {
	GoTo(ctx context.Context, url string) (*modules.PageInfo, error)
	GetContent(ctx context.Context) (string, error)
	Screenshot(ctx context.Context, fullPage bool) (*modules.Screenshot, error)
}

var (
	_ FileSystem     = (*modules.FS)(nil)
	_ VersionControl = (*modules.Git)(nil)
	_ Shell          = (*modules.Terminal)(nil)
	_ Deliberations  = (*modules.Deliberation)(nil)
	_ Portfolios     = (*modules.Portfolio)(nil)
	_ Todos          = (*modules.Todo)(nil)
	_ KeyValueStore  = (*modules.Memory)(nil)
	_ Browser        = (*modules.Browser)(nil)
)

// All builds every tool over the SDK modules.
func All(m *modules.Modules) []Tool {
	var out []Tool
	out = append(out, FileSystemTools(m.FS)...)
	out = append(out, GitTools(m.Git)...)
	out = append(out, TerminalTools(m.Terminal)...)
	out = append(out, DeliberationTools(m.Deliberation)...)
	out = append(out, PortfolioTools(m.Portfolio)...)
	out = append(out, TodoTools(m.Todo)...)
	out = append(out, MemoryTools(m.Memory)...)
	out = append(out, BrowserTools(m.Browser)...)
	return out
}
