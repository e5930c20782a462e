package modules

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/codeboltai/codebolt-go/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost answers every request with a canned frame keyed by "<type>/<action>".
type fakeHost struct {
	replies  map[string]string
	requests []messaging.Envelope
	err      error
}

func (h *fakeHost) SendAndWaitForResponse(ctx context.Context, env messaging.Envelope, expectedType string) (*messaging.Message, error) {
	h.requests = append(h.requests, env)
	if h.err != nil {
		return nil, h.err
	}
	raw, ok := h.replies[env.Type+"/"+env.Action]
	if !ok {
		raw = `{}`
	}
	return &messaging.Message{ToolUseID: "tool_1_a", Type: expectedType, Raw: json.RawMessage(raw)}, nil
}

func (h *fakeHost) last(t *testing.T) messaging.Envelope {
	t.Helper()
	require.NotEmpty(t, h.requests)
	return h.requests[len(h.requests)-1]
}

func dataOf(t *testing.T, env messaging.Envelope) map[string]any {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestFS(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"fsEvent/readFile":    `{"success":true,"content":"package main"}`,
		"fsEvent/listFiles":   `{"files":[{"path":"a.go","size":10},{"path":"pkg","isDirectory":true}]}`,
		"fsEvent/searchFiles": `{"results":[{"path":"a.go","line":3,"text":"TODO"}]}`,
	}}
	fs := New(host).FS
	ctx := context.Background()

	content, err := fs.ReadFile(ctx, "a.go")
	require.NoError(t, err)
	assert.Equal(t, "package main", content)
	assert.Equal(t, "fsEvent", host.last(t).Type)
	assert.Equal(t, "a.go", dataOf(t, host.last(t))["filePath"])

	files, err := fs.ListFiles(ctx, ".", true)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, files[1].IsDirectory)

	matches, err := fs.SearchFiles(ctx, ".", "TODO", "*.go")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Line)

	require.NoError(t, fs.WriteFile(ctx, "b.go", "x"))
	require.NoError(t, fs.DeleteFile(ctx, "b.go"))
	assert.Equal(t, "deleteFile", host.last(t).Action)
}

func TestCall_HostFailure(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"fsEvent/readFile":  `{"success":false,"message":"no such file"}`,
		"gitEvent/status":   `{"success":false,"error":"not a repository"}`,
		"todoEvent/addTodo": `{"success":false}`,
	}}
	m := New(host)

	_, err := m.FS.ReadFile(context.Background(), "missing.go")
	var hostErr *HostError
	require.True(t, errors.As(err, &hostErr))
	assert.Equal(t, "no such file", hostErr.Message)
	assert.Equal(t, "fsEvent.readFile failed: no such file", err.Error())

	_, err = m.Git.Status(context.Background())
	require.True(t, errors.As(err, &hostErr))
	assert.Equal(t, "not a repository", hostErr.Message)

	_, err = m.Todo.Add(context.Background(), AddTodo{Title: "x"})
	require.True(t, errors.As(err, &hostErr))
	assert.Equal(t, "todoEvent.addTodo failed", err.Error())
}

func TestCall_TransportErrorWrapped(t *testing.T) {
	host := &fakeHost{err: messaging.ErrTimeout}
	_, err := New(host).Terminal.ExecuteCommand(context.Background(), "ls", false)
	assert.ErrorIs(t, err, messaging.ErrTimeout)
	assert.Contains(t, err.Error(), "executeCommand.executeCommand")
}

func TestResponseType(t *testing.T) {
	assert.Equal(t, "createResponse", ResponseType("create"))
}

func TestGit(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"gitEvent/status": `{"data":{"branch":"main","modified":["a.go"]}}`,
		"gitEvent/diff":   `{"data":"diff --git a/a.go b/a.go"}`,
		"gitEvent/commit": `{"data":{"hash":"abc123"}}`,
		"gitEvent/logs":   `{"data":[{"hash":"abc123","message":"init"}]}`,
	}}
	git := New(host).Git
	ctx := context.Background()

	st, err := git.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", st.Branch)
	assert.False(t, st.Clean())

	diff, err := git.Diff(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, diff, "diff --git")

	c, err := git.Commit(ctx, "fix bug")
	require.NoError(t, err)
	assert.Equal(t, "abc123", c.Hash)
	assert.Equal(t, "fix bug", c.Message)

	log, err := git.Log(ctx, 5)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.EqualValues(t, 5, dataOf(t, host.last(t))["limit"])
}

func TestTerminal(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"executeCommand/executeCommand": `{"output":"ok","exitCode":2}`,
	}}
	res, err := New(host).Terminal.ExecuteCommand(context.Background(), "make", true)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Output)
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, true, dataOf(t, host.last(t))["returnEmptyStringOnSuccess"])
}

func TestDeliberation(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"agentDeliberation/create":     `{"payload":{"deliberation":{"id":"d1","title":"T","type":"voting","status":"draft","participants":[]}}}`,
		"agentDeliberation/get":        `{"payload":{"deliberation":{"id":"d1","title":"T"},"responses":[{"id":"r1","responderId":"a2","body":"B","voteCount":1}]}}`,
		"agentDeliberation/list":       `{"payload":{"deliberations":[{"id":"d1"},{"id":"d2"}]}}`,
		"agentDeliberation/respond":    `{"payload":{"response":{"id":"r2","responderId":"a3","body":"C"}}}`,
		"agentDeliberation/vote":       `{"payload":{"vote":{"id":"v1","responseId":"r1","voterId":"a4"}}}`,
		"agentDeliberation/get-winner": `{"payload":{"winner":{"id":"r1","body":"B","voteCount":3},"voteCount":3}}`,
		"agentDeliberation/summary":    `{"payload":{"deliberation":{"id":"d1","status":"completed"}}}`,
	}}
	d := New(host).Deliberation
	ctx := context.Background()

	rec, err := d.Create(ctx, CreateDeliberation{Type: "voting", Title: "T", RequestMessage: "R", CreatorID: "a1", CreatorName: "Agent1"})
	require.NoError(t, err)
	assert.Equal(t, "d1", rec.ID)
	assert.Equal(t, "voting", dataOf(t, host.last(t))["deliberationType"])

	rec, err = d.Get(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, rec.Responses, 1)

	list, total, err := d.List(ctx, ListDeliberations{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, total)

	r, err := d.Respond(ctx, RespondDeliberation{DeliberationID: "d1", ResponderID: "a3", Body: "C"})
	require.NoError(t, err)
	assert.Equal(t, "r2", r.ID)

	v, err := d.Vote(ctx, VoteDeliberation{DeliberationID: "d1", ResponseID: "r1", VoterID: "a4"})
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)

	w, err := d.GetWinner(ctx, "d1")
	require.NoError(t, err)
	require.NotNil(t, w.Response)
	assert.Equal(t, 3, w.VoteCount)
	assert.Equal(t, "get-winner", host.last(t).Action)

	rec, err = d.Summary(ctx, SummarizeDeliberation{DeliberationID: "d1", Summary: "S"})
	require.NoError(t, err)
	assert.Equal(t, "S", rec.Summary)
}

func TestPortfolio(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"agentPortfolio/getPortfolio":   `{"payload":{"portfolio":{"karma":42,"talents":[{"id":"t1","name":"go"}]}}}`,
		"agentPortfolio/addKarma":       `{"payload":{"karma":10}}`,
		"agentPortfolio/addTestimonial": `{"payload":{"testimonial":{"id":"x1","content":"great"}}}`,
		"agentPortfolio/addTalent":      `{"payload":{"talent":{"id":"t2"}}}`,
		"agentPortfolio/getRanking":     `{"payload":{"ranking":[{"rank":1,"agentId":"a1","karma":99}]}}`,
	}}
	p := New(host).Portfolio
	ctx := context.Background()

	pf, err := p.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", pf.AgentID)
	assert.Equal(t, 42, pf.Karma)

	karma, err := p.AddKarma(ctx, "a2", -5, "late")
	require.NoError(t, err)
	assert.Equal(t, 10, karma)
	assert.EqualValues(t, -5, dataOf(t, host.last(t))["amount"])

	tm, err := p.AddTestimonial(ctx, "a2", "great", "")
	require.NoError(t, err)
	assert.Equal(t, "great", tm.Content)

	tl, err := p.AddTalent(ctx, "rust", "systems")
	require.NoError(t, err)
	assert.Equal(t, "rust", tl.Name)

	ranking, err := p.GetRanking(ctx, 10, RankingByKarma)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
}

func TestTodo(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"todoEvent/addTodo":     `{"todo":{"id":"1","title":"write tests","status":"pending"}}`,
		"todoEvent/updateTodo":  `{"todo":{"id":"1","title":"write tests","status":"completed"}}`,
		"todoEvent/getTodoList": `{"todos":[{"id":"1","title":"write tests","status":"completed"}]}`,
	}}
	todo := New(host).Todo
	ctx := context.Background()

	item, err := todo.Add(ctx, AddTodo{Title: "write tests"})
	require.NoError(t, err)
	assert.Equal(t, "pending", item.Status)

	item, err = todo.Update(ctx, UpdateTodo{ID: "1", Status: TodoCompleted})
	require.NoError(t, err)
	assert.Equal(t, "completed", item.Status)

	items, err := todo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMemory(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"memoryEvent/get": `{"value":{"theme":"dark"}}`,
	}}
	mem := New(host).Memory
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "prefs", map[string]string{"theme": "dark"}))
	assert.Equal(t, "set", host.last(t).Action)

	value, found, err := mem.Get(ctx, "prefs")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"theme":"dark"}`, string(value))

	host.replies["memoryEvent/get"] = `{"value":null}`
	_, found, err = mem.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBrowser(t *testing.T) {
	host := &fakeHost{replies: map[string]string{
		"browserEvent/goToPage":   `{"payload":{"title":"Example"}}`,
		"browserEvent/getContent": `{"payload":{"content":"Hello"}}`,
		"browserEvent/screenshot": `{"payload":{"data":"aGk="}}`,
	}}
	b := New(host).Browser
	ctx := context.Background()

	page, err := b.GoTo(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", page.URL)
	assert.Equal(t, "Example", page.Title)

	content, err := b.GetContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello", content)

	shot, err := b.Screenshot(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "png", shot.Format)
	assert.Equal(t, "aGk=", shot.Data)
}
