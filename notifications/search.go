package notifications

// Search describes a search query.
type Search struct {
	Query      string         `json:"query"`
	Filters    map[string]any `json:"filters,omitempty"`
	MaxResults int            `json:"maxResults,omitempty"`
}

// SearchNotifier sends searchnotify envelopes.
type SearchNotifier struct{ category }

func (n *SearchNotifier) SearchRequest(req Search, toolUseID string) error {
	return n.request("searchRequest", toolUseID, req, str("query", req.Query))
}

func (n *SearchNotifier) SearchResult(content any, isError bool, toolUseID string) error {
	return n.result("searchResult", content, isError, toolUseID)
}

func (n *SearchNotifier) GetFirstLinkRequest(req Search, toolUseID string) error {
	return n.request("getFirstLinkRequest", toolUseID, req, str("query", req.Query))
}

func (n *SearchNotifier) GetFirstLinkResult(content any, isError bool, toolUseID string) error {
	return n.result("getFirstLinkResult", content, isError, toolUseID)
}
