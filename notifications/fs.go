package notifications

// CreateFile announces a new file.
type CreateFile struct {
	FileName string `json:"fileName"`
	Source   string `json:"source"`
	FilePath string `json:"filePath"`
}

// FilePath names a single file.
type FilePath struct {
	FilePath string `json:"filePath"`
}

// EditFile replaces a file's content.
type EditFile struct {
	FilePath   string `json:"filePath"`
	NewContent string `json:"newContent"`
}

// ListDirectory names a directory.
type ListDirectory struct {
	DirPath string `json:"dirPath"`
}

// FSNotifier sends fsnotify envelopes.
type FSNotifier struct{ category }

func (n *FSNotifier) CreateFileRequest(req CreateFile, toolUseID string) error {
	return n.request("createFileRequest", toolUseID, req,
		str("fileName", req.FileName),
		str("filePath", req.FilePath))
}

func (n *FSNotifier) CreateFileResult(content any, isError bool, toolUseID string) error {
	return n.result("createFileResult", content, isError, toolUseID)
}

func (n *FSNotifier) ReadFileRequest(req FilePath, toolUseID string) error {
	return n.request("readFileRequest", toolUseID, req, str("filePath", req.FilePath))
}

func (n *FSNotifier) ReadFileResult(content any, isError bool, toolUseID string) error {
	return n.result("readFileResult", content, isError, toolUseID)
}

// EditFileRequest allows empty NewContent, which truncates the file.
func (n *FSNotifier) EditFileRequest(req EditFile, toolUseID string) error {
	return n.request("editFileRequest", toolUseID, req, str("filePath", req.FilePath))
}

func (n *FSNotifier) EditFileResult(content any, isError bool, toolUseID string) error {
	return n.result("editFileResult", content, isError, toolUseID)
}

func (n *FSNotifier) DeleteFileRequest(req FilePath, toolUseID string) error {
	return n.request("deleteFileRequest", toolUseID, req, str("filePath", req.FilePath))
}

func (n *FSNotifier) DeleteFileResult(content any, isError bool, toolUseID string) error {
	return n.result("deleteFileResult", content, isError, toolUseID)
}

func (n *FSNotifier) ListDirectoryRequest(req ListDirectory, toolUseID string) error {
	return n.request("listDirectoryRequest", toolUseID, req, str("dirPath", req.DirPath))
}

func (n *FSNotifier) ListDirectoryResult(content any, isError bool, toolUseID string) error {
	return n.result("listDirectoryResult", content, isError, toolUseID)
}
