package modules

import "context"

// GitStatus summarizes the working tree.
type GitStatus struct {
	Branch    string   `json:"branch"`
	Ahead     int      `json:"ahead,omitempty"`
	Behind    int      `json:"behind,omitempty"`
	Staged    []string `json:"staged,omitempty"`
	Modified  []string `json:"modified,omitempty"`
	Untracked []string `json:"untracked,omitempty"`
}

// Clean reports whether nothing is staged, modified or untracked.
func (s GitStatus) Clean() bool {
	return len(s.Staged) == 0 && len(s.Modified) == 0 && len(s.Untracked) == 0
}

// GitCommit is one commit.
type GitCommit struct {
	Hash    string `json:"hash"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date,omitempty"`
	Message string `json:"message"`
}

// Git runs git operations in the host's project.
type Git struct{ module }

func (g *Git) Status(ctx context.Context) (*GitStatus, error) {
	var resp struct {
		Data GitStatus `json:"data"`
	}
	if err := g.call(ctx, "status", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Diff returns the diff of ref against its parent, or of the working tree when ref is empty.
func (g *Git) Diff(ctx context.Context, ref string) (string, error) {
	var resp struct {
		Data string `json:"data"`
	}
	if err := g.call(ctx, "diff", map[string]any{"commitHash": ref}, &resp); err != nil {
		return "", err
	}
	return resp.Data, nil
}

func (g *Git) Commit(ctx context.Context, message string) (*GitCommit, error) {
	var resp struct {
		Data GitCommit `json:"data"`
	}
	if err := g.call(ctx, "commit", map[string]any{"message": message}, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Message == "" {
		resp.Data.Message = message
	}
	return &resp.Data, nil
}

func (g *Git) Log(ctx context.Context, limit int) ([]GitCommit, error) {
	var resp struct {
		Data []GitCommit `json:"data"`
	}
	if err := g.call(ctx, "logs", map[string]any{"limit": limit}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
