package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// FileSystemTools builds the file tools.
func FileSystemTools(fs FileSystem) []Tool {
	return []Tool{
		newTool("read_file",
			"Read the contents of a file in the project.",
			func(p *schemas.ReadFileParams) error { return required("path", p.Path) },
			func(ctx context.Context, p *schemas.ReadFileParams) (Result, error) {
				content, err := fs.ReadFile(ctx, p.Path)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    content,
					ReturnDisplay: fmt.Sprintf("Read %s (%d bytes)", p.Path, len(content)),
				}, nil
			}),

		newTool("write_file",
			"Write content to a file, creating it if it does not exist and overwriting it otherwise.",
			func(p *schemas.WriteFileParams) error { return required("path", p.Path) },
			func(ctx context.Context, p *schemas.WriteFileParams) (Result, error) {
				if err := fs.WriteFile(ctx, p.Path, p.Content); err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Wrote %d bytes to %s", len(p.Content), p.Path),
					ReturnDisplay: "Wrote " + p.Path,
				}, nil
			}),

		newTool("list_files",
			"List files and directories under a path.",
			noValidation[schemas.ListFilesParams],
			func(ctx context.Context, p *schemas.ListFilesParams) (Result, error) {
				path := p.Path
				if path == "" {
					path = "."
				}
				files, err := fs.ListFiles(ctx, path, p.Recursive)
				if err != nil {
					return Result{}, err
				}
				var b strings.Builder
				for _, f := range files {
					b.WriteString(f.Path)
					if f.IsDirectory {
						b.WriteString("/")
					}
					b.WriteString("\n")
				}
				return Result{
					LLMContent:    b.String(),
					ReturnDisplay: fmt.Sprintf("Listed %d entries in %s", len(files), path),
				}, nil
			}),

		newTool("delete_file",
			"Delete a file from the project.",
			func(p *schemas.DeleteFileParams) error { return required("path", p.Path) },
			func(ctx context.Context, p *schemas.DeleteFileParams) (Result, error) {
				if err := fs.DeleteFile(ctx, p.Path); err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    "Deleted " + p.Path,
					ReturnDisplay: "Deleted " + p.Path,
				}, nil
			}),

		newTool("search_files",
			"Search file contents with a regular expression.",
			func(p *schemas.SearchFilesParams) error { return required("regex", p.Regex) },
			func(ctx context.Context, p *schemas.SearchFilesParams) (Result, error) {
				path := p.Path
				if path == "" {
					path = "."
				}
				matches, err := fs.SearchFiles(ctx, path, p.Regex, p.FilePattern)
				if err != nil {
					return Result{}, err
				}
				if len(matches) == 0 {
					return Result{
						LLMContent:    fmt.Sprintf("No matches for %q", p.Regex),
						ReturnDisplay: "No matches",
					}, nil
				}
				var b strings.Builder
				for _, m := range matches {
					fmt.Fprintf(&b, "%s:%d: %s\n", m.Path, m.Line, m.Text)
				}
				return Result{
					LLMContent:    b.String(),
					ReturnDisplay: fmt.Sprintf("Found %d matches", len(matches)),
				}, nil
			}),
	}
}
