package config

// GetOrdersFile returns the path of the CSV file the order catalog is
// loaded from at startup.
func GetOrdersFile() string {
	return GetEnvOrDefault("ORDERS_FILE", "orders.csv")
}
