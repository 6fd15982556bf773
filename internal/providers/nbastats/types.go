package nbastats

// statsResponse is the envelope stats.nba.com wraps every endpoint in.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

// resultSet carries positional headers and untyped rows.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r *statsResponse) firstSet() *resultSet {
	if len(r.ResultSets) == 0 {
		return nil
	}
	return &r.ResultSets[0]
}
