package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

const defaultLogLimit = 10

// GitTools builds the git tools.
func GitTools(git VersionControl) []Tool {
	return []Tool{
		newTool("git_status",
			"Show the working tree status of the project repository.",
			noValidation[schemas.Empty],
			func(ctx context.Context, _ *schemas.Empty) (Result, error) {
				st, err := git.Status(ctx)
				if err != nil {
					return Result{}, err
				}
				display := "On branch " + st.Branch
				if st.Clean() {
					display += ", working tree clean"
				}
				return Result{LLMContent: jsonContent(st), ReturnDisplay: display}, nil
			}),

		newTool("git_diff",
			"Show changes in the working tree, optionally against a ref.",
			noValidation[schemas.GitDiffParams],
			func(ctx context.Context, p *schemas.GitDiffParams) (Result, error) {
				diff, err := git.Diff(ctx, p.Ref)
				if err != nil {
					return Result{}, err
				}
				if strings.TrimSpace(diff) == "" {
					return Result{LLMContent: "No changes", ReturnDisplay: "No changes"}, nil
				}
				return Result{
					LLMContent:    diff,
					ReturnDisplay: fmt.Sprintf("Diff: %d lines", strings.Count(diff, "\n")+1),
				}, nil
			}),

		newTool("git_commit",
			"Commit all staged changes with a message.",
			func(p *schemas.GitCommitParams) error { return required("message", p.Message) },
			func(ctx context.Context, p *schemas.GitCommitParams) (Result, error) {
				c, err := git.Commit(ctx, p.Message)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Committed %s: %s", c.Hash, c.Message),
					ReturnDisplay: "Committed " + shortHash(c.Hash),
				}, nil
			}),

		newTool("git_log",
			"Show recent commits.",
			func(p *schemas.GitLogParams) error { return optionalRange("limit", p.Limit, 1, 100) },
			func(ctx context.Context, p *schemas.GitLogParams) (Result, error) {
				limit := p.Limit
				if limit == 0 {
					limit = defaultLogLimit
				}
				commits, err := git.Log(ctx, limit)
				if err != nil {
					return Result{}, err
				}
				var b strings.Builder
				for _, c := range commits {
					fmt.Fprintf(&b, "%s %s\n", shortHash(c.Hash), c.Message)
				}
				return Result{
					LLMContent:    b.String(),
					ReturnDisplay: fmt.Sprintf("%d commits", len(commits)),
				}, nil
			}),
	}
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
