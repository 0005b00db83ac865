package orders

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// Order is a single catalog record.
type Order struct {
	Item   string
	Status string
}

// Catalog is the in-memory order table, keyed by order id. Mutations are
// process-local; nothing is written back to the source file.
type Catalog struct {
	mu     sync.RWMutex
	orders map[string]Order
}

// Load reads the order table from a CSV file with an
// `order_id,status,item` header. A missing or malformed file is not
// fatal: the service starts with an empty catalog and every lookup
// reports not found.
func Load(path string) *Catalog {
	catalog := &Catalog{
		orders: make(map[string]Order),
	}

	file, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Order file not readable, starting with empty catalog")
		return catalog
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Order file not parsable, starting with empty catalog")
		return catalog
	}
	if len(records) == 0 {
		log.Warn().Str("path", path).Msg("Order file is empty, starting with empty catalog")
		return catalog
	}

	// Column positions come from the header row, so column order in the
	// file does not matter.
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	idCol, idOK := columns["order_id"]
	statusCol, statusOK := columns["status"]
	itemCol, itemOK := columns["item"]
	if !idOK || !statusOK || !itemOK {
		log.Warn().Str("path", path).Msg("Order file header missing required columns, starting with empty catalog")
		return catalog
	}

	for _, record := range records[1:] {
		if len(record) <= idCol || len(record) <= statusCol || len(record) <= itemCol {
			log.Warn().Strs("record", record).Msg("Skipping short order record")
			continue
		}
		catalog.orders[record[idCol]] = Order{
			Item:   record[itemCol],
			Status: record[statusCol],
		}
	}

	log.Info().Int("orders", len(catalog.orders)).Str("path", path).Msg("Order catalog loaded")
	return catalog
}

// Lookup returns a sentence describing the order, or a not-found
// sentence for an unknown id. An unknown id is a normal outcome, not an
// error.
func (c *Catalog) Lookup(orderID string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	order, ok := c.orders[orderID]
	if !ok {
		return fmt.Sprintf("Order %s not found.", orderID)
	}
	return fmt.Sprintf("Order %s: %s is currently %s.", orderID, order.Item, order.Status)
}

// Cancel marks the order canceled and returns a confirmation sentence.
// Canceling an already-canceled order re-confirms cancellation; an
// unknown id returns the same not-found sentence as Lookup.
func (c *Catalog) Cancel(orderID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[orderID]
	if !ok {
		return fmt.Sprintf("Order %s not found.", orderID)
	}
	order.Status = "canceled"
	c.orders[orderID] = order
	return fmt.Sprintf("Order %s has been canceled.", orderID)
}

// Len reports the number of loaded orders.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}
