package notifications

// GitPath names a repository.
type GitPath struct {
	Path string `json:"path"`
}

// GitCommit describes a commit.
type GitCommit struct {
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
}

// GitPush describes a push.
type GitPush struct {
	Remote string `json:"remote,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// GitNotifier sends gitnotify envelopes.
type GitNotifier struct{ category }

func (n *GitNotifier) InitRequest(req GitPath, toolUseID string) error {
	return n.request("initRequest", toolUseID, req, str("path", req.Path))
}

func (n *GitNotifier) InitResult(content any, isError bool, toolUseID string) error {
	return n.result("initResult", content, isError, toolUseID)
}

// StatusRequest reports status of req.Path, or the project root when empty.
func (n *GitNotifier) StatusRequest(req GitPath, toolUseID string) error {
	return n.request("statusRequest", toolUseID, req)
}

func (n *GitNotifier) StatusResult(content any, isError bool, toolUseID string) error {
	return n.result("statusResult", content, isError, toolUseID)
}

func (n *GitNotifier) CommitRequest(req GitCommit, toolUseID string) error {
	return n.request("commitRequest", toolUseID, req, str("message", req.Message))
}

func (n *GitNotifier) CommitResult(content any, isError bool, toolUseID string) error {
	return n.result("commitResult", content, isError, toolUseID)
}

func (n *GitNotifier) PushRequest(req GitPush, toolUseID string) error {
	return n.request("pushRequest", toolUseID, req)
}

func (n *GitNotifier) PushResult(content any, isError bool, toolUseID string) error {
	return n.result("pushResult", content, isError, toolUseID)
}
