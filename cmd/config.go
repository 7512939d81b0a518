package cmd

import "time"

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	AirportsFile          string
	CoverageFile          string
	PaymentGatewayURL     string
	PaymentGatewayAPIKey  string
	RequestTimeout        time.Duration
	BacklogReportSchedule string
}
