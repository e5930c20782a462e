package modules

import "context"

// PageInfo describes the page the browser is on.
type PageInfo struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Screenshot is a captured image.
type Screenshot struct {
	Data   string `json:"data"` // base64
	Format string `json:"format,omitempty"`
}

// Browser drives the host's browser.
type Browser struct{ module }

func (b *Browser) GoTo(ctx context.Context, url string) (*PageInfo, error) {
	var resp struct {
		Payload PageInfo `json:"payload"`
	}
	if err := b.call(ctx, "goToPage", map[string]any{"url": url}, &resp); err != nil {
		return nil, err
	}
	if resp.Payload.URL == "" {
		resp.Payload.URL = url
	}
	return &resp.Payload, nil
}

// GetContent returns the text content of the current page.
func (b *Browser) GetContent(ctx context.Context) (string, error) {
	var resp struct {
		Payload struct {
			Content string `json:"content"`
		} `json:"payload"`
	}
	if err := b.call(ctx, "getContent", struct{}{}, &resp); err != nil {
		return "", err
	}
	return resp.Payload.Content, nil
}

func (b *Browser) Screenshot(ctx context.Context, fullPage bool) (*Screenshot, error) {
	var resp struct {
		Payload Screenshot `json:"payload"`
	}
	if err := b.call(ctx, "screenshot", map[string]any{"fullPage": fullPage}, &resp); err != nil {
		return nil, err
	}
	if resp.Payload.Format == "" {
		resp.Payload.Format = "png"
	}
	return &resp.Payload, nil
}
