package notifications

// CrawlerSearch searches within a crawled site.
type CrawlerSearch struct {
	URL               string `json:"url"`
	Query             string `json:"query,omitempty"`
	MaxDepth          int    `json:"maxDepth,omitempty"`
	MaxPages          int    `json:"maxPages,omitempty"`
	IncludeSubdomains bool   `json:"includeSubdomains,omitempty"`
}

// CrawlerStart starts a crawl.
type CrawlerStart struct {
	StartURL string         `json:"startUrl"`
	Options  map[string]any `json:"options,omitempty"`
}

// CrawlerNotifier sends crawlernotify envelopes.
type CrawlerNotifier struct{ category }

func (n *CrawlerNotifier) CrawlerSearchRequest(req CrawlerSearch, toolUseID string) error {
	return n.request("crawlerSearchRequest", toolUseID, req, str("url", req.URL))
}

func (n *CrawlerNotifier) CrawlerSearchResult(content any, isError bool, toolUseID string) error {
	return n.result("crawlerSearchResult", content, isError, toolUseID)
}

func (n *CrawlerNotifier) CrawlerStartRequest(req CrawlerStart, toolUseID string) error {
	return n.request("crawlerStartRequest", toolUseID, req, str("startUrl", req.StartURL))
}

func (n *CrawlerNotifier) CrawlerStartResult(content any, isError bool, toolUseID string) error {
	return n.result("crawlerStartResult", content, isError, toolUseID)
}
