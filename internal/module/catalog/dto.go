package catalog

// ListResponse is the canned collection payload every module returns.
// Data is always an empty array and Total is always zero.
type ListResponse struct {
	Success bool   `json:"success"`
	Data    []any  `json:"data"`
	Total   int    `json:"total"`
	Module  string `json:"module"`
}

// HealthResponse is the stub per-module health report.
type HealthResponse struct {
	Module  string `json:"module"`
	Status  string `json:"status"`
	Version string `json:"version"`
}
