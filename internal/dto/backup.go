package dto

// BackupDocument is the bulk export payload: raw snake_case rows keyed by
// table name. Field order fixes the table dependency order in the emitted
// JSON; import replays tables in the same order.
type BackupDocument struct {
	Vehicles          []map[string]any `json:"vehicles"`
	Drivers           []map[string]any `json:"drivers"`
	FinancialAccounts []map[string]any `json:"financial_accounts"`
	Suppliers         []map[string]any `json:"suppliers"`
	Customers         []map[string]any `json:"customers"`
	Checklists        []map[string]any `json:"checklists"`
	Transactions      []map[string]any `json:"transactions"`
	Trips             []map[string]any `json:"trips"`
	FuelEntries       []map[string]any `json:"fuel_entries"`
}

// Tables returns the document contents keyed by table name.
func (d *BackupDocument) Tables() map[string][]map[string]any {
	return map[string][]map[string]any{
		"vehicles":           d.Vehicles,
		"drivers":            d.Drivers,
		"financial_accounts": d.FinancialAccounts,
		"suppliers":          d.Suppliers,
		"customers":          d.Customers,
		"checklists":         d.Checklists,
		"transactions":       d.Transactions,
		"trips":              d.Trips,
		"fuel_entries":       d.FuelEntries,
	}
}

// SetTable stores rows under the given table name.
func (d *BackupDocument) SetTable(table string, rows []map[string]any) {
	switch table {
	case "vehicles":
		d.Vehicles = rows
	case "drivers":
		d.Drivers = rows
	case "financial_accounts":
		d.FinancialAccounts = rows
	case "suppliers":
		d.Suppliers = rows
	case "customers":
		d.Customers = rows
	case "checklists":
		d.Checklists = rows
	case "transactions":
		d.Transactions = rows
	case "trips":
		d.Trips = rows
	case "fuel_entries":
		d.FuelEntries = rows
	}
}

// ImportSummary reports how many rows were upserted per table.
type ImportSummary struct {
	RowsByTable map[string]int `json:"rowsByTable"`
	TotalRows   int            `json:"totalRows"`
}
