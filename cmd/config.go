package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// InvoiceTaxRate is the flat rate applied when generating invoices,
	// e.g. "0.18". Blank disables taxes.
	InvoiceTaxRate string
}
