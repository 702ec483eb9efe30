package models

type PruneReport struct {
	Scanned  int      `json:"scanned"`
	Deleted  []string `json:"deleted"`
	Retained []string `json:"retained"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
