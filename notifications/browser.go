package notifications

// WebFetch describes a page fetch.
type WebFetch struct {
	URL     string            `json:"url"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    any               `json:"body,omitempty"`
	Timeout int               `json:"timeout,omitempty"`
}

// WebSearch describes a web search.
type WebSearch struct {
	Query        string `json:"query"`
	MaxResults   int    `json:"maxResults,omitempty"`
	SearchEngine string `json:"searchEngine,omitempty"`
}

// BrowserNotifier sends browsernotify envelopes.
type BrowserNotifier struct{ category }

func (n *BrowserNotifier) WebFetchRequest(req WebFetch, toolUseID string) error {
	return n.request("webFetchRequest", toolUseID, req, str("url", req.URL))
}

func (n *BrowserNotifier) WebFetchResult(content any, isError bool, toolUseID string) error {
	return n.result("webFetchResult", content, isError, toolUseID)
}

func (n *BrowserNotifier) WebSearchRequest(req WebSearch, toolUseID string) error {
	return n.request("webSearchRequest", toolUseID, req, str("query", req.Query))
}

func (n *BrowserNotifier) WebSearchResult(content any, isError bool, toolUseID string) error {
	return n.result("webSearchResult", content, isError, toolUseID)
}
