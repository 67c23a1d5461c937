package statsapi

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

var transactionColumns = []string{
	"transaction_id", "player_mlbam", "player_name",
	"to_mlbam", "to_name", "from_mlbam", "from_name",
	"date", "effective_date", "resolution_date",
	"type_code", "type_desc", "description",
}

// ParseTransactions turns a transactions payload into rows sorted by date,
// newest first.
func ParseTransactions(body json.RawMessage) (*table.Table, error) {
	var payload transactionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	out := table.New(transactionColumns...)
	for _, tx := range payload.Transactions {
		r := table.NewRecord()
		r.Set("transaction_id", idCell(tx.ID)).
			Set("player_mlbam", idCell(tx.Person.id())).
			Set("player_name", tx.Person.name()).
			Set("to_mlbam", idCell(tx.ToTeam.id())).
			Set("to_name", tx.ToTeam.name()).
			Set("from_mlbam", idCell(tx.FromTeam.id())).
			Set("from_name", tx.FromTeam.name()).
			Set("date", dateCell(tx.Date)).
			Set("effective_date", dateCell(tx.EffectiveDate)).
			Set("resolution_date", dateCell(tx.ResolutionDate)).
			Set("type_code", tx.TypeCode).
			Set("type_desc", tx.TypeDesc).
			Set("description", tx.Description)
		out.Append(r)
	}
	return out.SortBy("date", true), nil
}

// dateCell normalizes an upstream date to YYYY-MM-DD, or nil when absent or
// unparseable.
func dateCell(raw string) any {
	d, err := domain.ParseMlbDate(raw)
	if err != nil || d.IsZero() {
		return nil
	}
	return d.String()
}
