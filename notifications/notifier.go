// Package notifications builds the fire-and-forget envelopes agents send to
// the host to report what they are doing.
//
// Every request function validates its required fields and returns a
// *ValidationError without sending when one is missing. Request functions
// generate a toolUseId when none is given; result functions require the id
// of the request they answer.
package notifications

import (
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/messaging"
	"github.com/samber/lo"
)

// Sender delivers an envelope without waiting for a reply.
type Sender interface {
	Send(env messaging.Envelope) error
}

// ValidationError reports a missing required field. Nothing was sent.
type ValidationError struct {
	Category string
	Action   string
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s is required", e.Category, e.Action, e.Field)
}

// Notifier groups the notification categories.
type Notifier struct {
	Agent     *AgentNotifier
	Browser   *BrowserNotifier
	Chat      *ChatNotifier
	CodeUtils *CodeUtilsNotifier
	Crawler   *CrawlerNotifier
	DBMemory  *DBMemoryNotifier
	FS        *FSNotifier
	Git       *GitNotifier
	History   *HistoryNotifier
	LLM       *LLMNotifier
	MCP       *MCPNotifier
	Search    *SearchNotifier
	System    *SystemNotifier
	Terminal  *TerminalNotifier
	Todo      *TodoNotifier
}

// New creates a Notifier sending through sender.
func New(sender Sender) *Notifier {
	return &Notifier{
		Agent:     &AgentNotifier{category{sender, TypeAgent}},
		Browser:   &BrowserNotifier{category{sender, TypeBrowser}},
		Chat:      &ChatNotifier{category{sender, TypeChat}},
		CodeUtils: &CodeUtilsNotifier{category{sender, TypeCodeUtils}},
		Crawler:   &CrawlerNotifier{category{sender, TypeCrawler}},
		DBMemory:  &DBMemoryNotifier{category{sender, TypeDBMemory}},
		FS:        &FSNotifier{category{sender, TypeFS}},
		Git:       &GitNotifier{category{sender, TypeGit}},
		History:   &HistoryNotifier{category{sender, TypeHistory}},
		LLM:       &LLMNotifier{category{sender, TypeLLM}},
		MCP:       &MCPNotifier{category{sender, TypeMCP}},
		Search:    &SearchNotifier{category{sender, TypeSearch}},
		System:    &SystemNotifier{category{sender, TypeSystem}},
		Terminal:  &TerminalNotifier{category{sender, TypeTerminal}},
		Todo:      &TodoNotifier{category{sender, TypeTodo}},
	}
}

// Envelope types, one per category.
const (
	TypeAgent     = "agentnotify"
	TypeBrowser   = "browsernotify"
	TypeChat      = "chatnotify"
	TypeCodeUtils = "codeutilsnotify"
	TypeCrawler   = "crawlernotify"
	TypeDBMemory  = "dbmemorynotify"
	TypeFS        = "fsnotify"
	TypeGit       = "gitnotify"
	TypeHistory   = "historynotify"
	TypeLLM       = "llmnotify"
	TypeMCP       = "mcpnotify"
	TypeSearch    = "searchnotify"
	TypeSystem    = "systemnotify"
	TypeTerminal  = "terminalnotify"
	TypeTodo      = "todonotify"
)

type check struct {
	field string
	ok    bool
}

func str(field, v string) check {
	return check{field: field, ok: strings.TrimSpace(v) != ""}
}

// present rejects nil, typed nil and blank strings.
func present(field string, v any) check {
	if s, ok := v.(string); ok {
		return str(field, s)
	}
	return check{field: field, ok: !lo.IsNil(v)}
}

func list[T any](field string, v []T) check {
	return check{field: field, ok: len(v) > 0}
}

type category struct {
	sender Sender
	name   string
}

func (c category) validate(action string, checks []check) error {
	for _, chk := range checks {
		if !chk.ok {
			return &ValidationError{Category: c.name, Action: action, Field: chk.field}
		}
	}
	return nil
}

// request sends data under action. An empty toolUseID is generated.
func (c category) request(action, toolUseID string, data any, checks ...check) error {
	if err := c.validate(action, checks); err != nil {
		return err
	}
	if toolUseID == "" {
		toolUseID = messaging.NewToolUseID()
	}
	return c.sender.Send(messaging.Envelope{
		ToolUseID: toolUseID,
		Type:      c.name,
		Action:    action,
		Data:      data,
	})
}

// result answers the request identified by toolUseID.
func (c category) result(action string, content any, isError bool, toolUseID string) error {
	checks := []check{str("toolUseId", toolUseID), present("content", content)}
	if err := c.validate(action, checks); err != nil {
		return err
	}
	return c.sender.Send(messaging.Envelope{
		ToolUseID: toolUseID,
		Type:      c.name,
		Action:    action,
		Content:   content,
		IsError:   isError,
	})
}
