package tracker

import "time"

// Issue is a work item as the external tracker reports it.
// The tracker owns label truth; this struct is read-mostly and is
// only ever mutated through the additive label operations.
type Issue struct {
	ID          int       `json:"id"`
	IID         int       `json:"iid"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Labels      []string  `json:"labels"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateLabelsRequest is the label mutation payload. Add and Remove are
// comma-joined label name lists applied in a single request. The tracker
// applies them additively; it exposes no atomic replace.
type UpdateLabelsRequest struct {
	AddLabels    string `json:"add_labels,omitempty"`
	RemoveLabels string `json:"remove_labels,omitempty"`
}
