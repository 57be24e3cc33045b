package balance

// Config holds configuration for the input workbooks.
type Config struct {
	// IndicatorPath is the path (or object name) of the capacity workbook.
	IndicatorPath string `mapstructure:"indicator_path" default:"./data/capacities.xlsx"`
	// BalancePath is the path (or object name) of the balance workbook.
	BalancePath string `mapstructure:"balance_path" default:"./data/matrix.xlsx"`
	// Bucket, when set, makes the loader fetch both workbooks from object
	// storage instead of the local filesystem.
	Bucket string `mapstructure:"bucket" default:""`
	// HeaderRow is the 1-based row holding the commodity column labels.
	HeaderRow int `mapstructure:"header_row" default:"5"`
}
