// Package constants provides shared constants for the closure-forecast application.
package constants

// Unit conversion constants
const (
	// M2PerHa is the number of square metres in one hectare
	M2PerHa = 10000.0

	// M3PerML is the number of cubic metres in one megalitre
	M3PerML = 1000.0

	// DaysPerYear is the day count used for annualising daily flows
	DaysPerYear = 365.0
)

// Financial constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CashflowReconciliationTolerance is the allowed difference in dollars
	// between the line item total and the summed annual cashflow
	CashflowReconciliationTolerance = 100.0
)

// Sensitivity analysis constants
const (
	// DefaultSensitivityVariationPercent is the one-at-a-time perturbation
	// applied to each sensitivity driver
	DefaultSensitivityVariationPercent = 10.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultInputFile is the default input file name
	DefaultInputFile = "closure.yaml"

	// ExampleInputFile is the example input file name
	ExampleInputFile = "closure.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the estimate API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size for
	// submitted input documents (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)
