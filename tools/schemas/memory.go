package schemas

type MemorySetParams struct {
	Key   string `json:"key" jsonschema_description:"Key to store the value under"`
	Value any    `json:"value" jsonschema_description:"Any JSON value"`
}

type MemoryGetParams struct {
	Key string `json:"key"`
}
