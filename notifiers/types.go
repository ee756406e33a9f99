package notifiers

// PublishResult outcome of one dashboard publish attempt
type PublishResult struct {
	RunID       string   `json:"run_id"`
	Group       string   `json:"group"`
	Destination string   `json:"destination"`
	Bytes       int      `json:"bytes"`
	Charts      int      `json:"charts"`
	Skipped     []string `json:"skipped,omitempty"`
	Success     bool     `json:"success"`
	ElapsedMS   int64    `json:"elapsed_ms"`
}
