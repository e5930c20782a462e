package schemas

type BrowserGoToParams struct {
	URL string `json:"url" jsonschema_description:"Absolute http(s) URL to open"`
}

type BrowserScreenshotParams struct {
	FullPage bool `json:"fullPage,omitempty" jsonschema_description:"Capture the whole page instead of the viewport"`
}
