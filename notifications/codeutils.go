package notifications

// GrepSearch describes a content search.
type GrepSearch struct {
	Pattern    string `json:"pattern"`
	FilePath   string `json:"filePath,omitempty"`
	Recursive  bool   `json:"recursive,omitempty"`
	IgnoreCase bool   `json:"ignoreCase,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// GlobSearch describes a path search.
type GlobSearch struct {
	Pattern            string `json:"pattern"`
	BasePath           string `json:"basePath,omitempty"`
	MaxDepth           int    `json:"maxDepth,omitempty"`
	IncludeDirectories bool   `json:"includeDirectories,omitempty"`
}

// CodeUtilsNotifier sends codeutilsnotify envelopes.
type CodeUtilsNotifier struct{ category }

func (n *CodeUtilsNotifier) GrepSearchRequest(req GrepSearch, toolUseID string) error {
	return n.request("grepSearchRequest", toolUseID, req, str("pattern", req.Pattern))
}

func (n *CodeUtilsNotifier) GrepSearchResult(content any, isError bool, toolUseID string) error {
	return n.result("grepSearchResult", content, isError, toolUseID)
}

func (n *CodeUtilsNotifier) GlobSearchRequest(req GlobSearch, toolUseID string) error {
	return n.request("globSearchRequest", toolUseID, req, str("pattern", req.Pattern))
}

func (n *CodeUtilsNotifier) GlobSearchResult(content any, isError bool, toolUseID string) error {
	return n.result("globSearchResult", content, isError, toolUseID)
}
