package notifications

// MemorySet stores a value under key.
type MemorySet struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// MemoryGet reads the value stored under key.
type MemoryGet struct {
	Key string `json:"key"`
}

// DBMemoryNotifier sends dbmemorynotify envelopes.
type DBMemoryNotifier struct{ category }

func (n *DBMemoryNotifier) MemorySetRequest(req MemorySet, toolUseID string) error {
	return n.request("memorySetRequest", toolUseID, req,
		str("key", req.Key),
		check{field: "value", ok: req.Value != nil})
}

func (n *DBMemoryNotifier) MemorySetResult(content any, isError bool, toolUseID string) error {
	return n.result("memorySetResult", content, isError, toolUseID)
}

func (n *DBMemoryNotifier) MemoryGetRequest(req MemoryGet, toolUseID string) error {
	return n.request("memoryGetRequest", toolUseID, req, str("key", req.Key))
}

func (n *DBMemoryNotifier) MemoryGetResult(content any, isError bool, toolUseID string) error {
	return n.result("memoryGetResult", content, isError, toolUseID)
}
