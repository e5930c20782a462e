package modules

import "context"

// FileEntry is one item of a directory listing.
type FileEntry struct {
	Path        string `json:"path"`
	IsDirectory bool   `json:"isDirectory,omitempty"`
	Size        int64  `json:"size,omitempty"`
}

// SearchMatch is one line matched by SearchFiles.
type SearchMatch struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// FS reads and changes files in the host's project.
type FS struct{ module }

func (f *FS) ReadFile(ctx context.Context, path string) (string, error) {
	var resp struct {
		Content string `json:"content"`
	}
	if err := f.call(ctx, "readFile", map[string]any{"filePath": path}, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (f *FS) WriteFile(ctx context.Context, path, content string) error {
	return f.call(ctx, "writeFile", map[string]any{"filePath": path, "content": content}, nil)
}

func (f *FS) ListFiles(ctx context.Context, path string, recursive bool) ([]FileEntry, error) {
	var resp struct {
		Files []FileEntry `json:"files"`
	}
	if err := f.call(ctx, "listFiles", map[string]any{"path": path, "recursive": recursive}, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

func (f *FS) DeleteFile(ctx context.Context, path string) error {
	return f.call(ctx, "deleteFile", map[string]any{"filePath": path}, nil)
}

// SearchFiles finds lines matching regex under path; filePattern narrows the
// files searched (e.g. "*.go").
func (f *FS) SearchFiles(ctx context.Context, path, regex, filePattern string) ([]SearchMatch, error) {
	var resp struct {
		Results []SearchMatch `json:"results"`
	}
	data := map[string]any{"path": path, "regex": regex, "filePattern": filePattern}
	if err := f.call(ctx, "searchFiles", data, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
