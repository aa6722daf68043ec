package types

// ExecuteRequest asks the registry to run a single tool.
type ExecuteRequest struct {
	ToolID  string                 `json:"tool_id" binding:"required"`
	Params  map[string]interface{} `json:"params"`
	Context *Context               `json:"context,omitempty"`
}

// DiscoverRequest finds services relevant to a free-form intent.
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}
