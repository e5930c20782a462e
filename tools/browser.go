package tools

import (
	"context"
	"fmt"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// BrowserTools builds the browser tools.
func BrowserTools(b Browser) []Tool {
	return []Tool{
		newTool("browser_goto",
			"Open a URL in the browser.",
			func(p *schemas.BrowserGoToParams) error { return httpURL("url", p.URL) },
			func(ctx context.Context, p *schemas.BrowserGoToParams) (Result, error) {
				page, err := b.GoTo(ctx, p.URL)
				if err != nil {
					return Result{}, err
				}
				content := "Opened " + page.URL
				if page.Title != "" {
					content += fmt.Sprintf(" (%s)", page.Title)
				}
				return Result{LLMContent: content, ReturnDisplay: "Opened " + page.URL}, nil
			}),

		newTool("browser_get_content",
			"Get the text content of the current page.",
			noValidation[schemas.Empty],
			func(ctx context.Context, _ *schemas.Empty) (Result, error) {
				content, err := b.GetContent(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    content,
					ReturnDisplay: fmt.Sprintf("Page content: %d characters", len(content)),
				}, nil
			}),

		newTool("browser_screenshot",
			"Take a screenshot of the current page.",
			noValidation[schemas.BrowserScreenshotParams],
			func(ctx context.Context, p *schemas.BrowserScreenshotParams) (Result, error) {
				shot, err := b.Screenshot(ctx, p.FullPage)
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Captured %s screenshot (%d base64 bytes)", shot.Format, len(shot.Data)),
					ReturnDisplay: "Screenshot captured",
				}, nil
			}),
	}
}
