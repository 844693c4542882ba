package model

// CityScore is the engine output for one city. All score values lie in
// [0,100]; TotalScore is the weighted mean of the six category scores.
type CityScore struct {
	CityID string `json:"city_id"`
	Name   string `json:"name"`
	State  string `json:"state"`

	Climate       float64 `json:"climate"`
	Cost          float64 `json:"cost"`
	Demographics  float64 `json:"demographics"`
	Quality       float64 `json:"quality"`
	Values        float64 `json:"values"`
	Entertainment float64 `json:"entertainment"`

	TotalScore float64 `json:"total_score"`

	// Excluded rows could not be evaluated (no metric data). They sort
	// after every included row.
	Excluded bool   `json:"excluded,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Ranking is the sorted result of one scoring run.
type Ranking struct {
	RunID    string      `json:"run_id"`
	Scores   []CityScore `json:"scores"`
	Included int         `json:"included"`
	Excluded int         `json:"excluded"`
}

// Float returns a pointer to v. Convenience for building metric records.
func Float(v float64) *float64 { return &v }
