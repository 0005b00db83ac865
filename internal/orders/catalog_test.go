package orders

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOrdersFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write orders file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads records keyed by order id", func(t *testing.T) {
		path := writeOrdersFile(t, "order_id,status,item\n42,shipped,Widget\n43,pending,Gadget\n")
		catalog := Load(path)

		if catalog.Len() != 2 {
			t.Errorf("Expected 2 orders, got %d", catalog.Len())
		}
	})

	t.Run("missing file yields empty catalog", func(t *testing.T) {
		catalog := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))

		if catalog.Len() != 0 {
			t.Errorf("Expected empty catalog, got %d orders", catalog.Len())
		}
		if got := catalog.Lookup("42"); got != "Order 42 not found." {
			t.Errorf("Expected not-found sentence, got %q", got)
		}
	})

	t.Run("header with reordered columns", func(t *testing.T) {
		path := writeOrdersFile(t, "item,order_id,status\nWidget,42,shipped\n")
		catalog := Load(path)

		if got := catalog.Lookup("42"); got != "Order 42: Widget is currently shipped." {
			t.Errorf("Unexpected lookup sentence: %q", got)
		}
	})

	t.Run("header missing required column yields empty catalog", func(t *testing.T) {
		path := writeOrdersFile(t, "order_id,item\n42,Widget\n")
		catalog := Load(path)

		if catalog.Len() != 0 {
			t.Errorf("Expected empty catalog, got %d orders", catalog.Len())
		}
	})

	t.Run("short records are skipped", func(t *testing.T) {
		path := writeOrdersFile(t, "order_id,status,item\n42\n43,pending,Gadget\n")
		catalog := Load(path)

		if catalog.Len() != 1 {
			t.Errorf("Expected 1 order, got %d", catalog.Len())
		}
	})
}

func TestLookup(t *testing.T) {
	path := writeOrdersFile(t, "order_id,status,item\n42,shipped,Widget\n")
	catalog := Load(path)

	t.Run("present order", func(t *testing.T) {
		if got := catalog.Lookup("42"); got != "Order 42: Widget is currently shipped." {
			t.Errorf("Unexpected sentence: %q", got)
		}
	})

	t.Run("absent order", func(t *testing.T) {
		if got := catalog.Lookup("999"); got != "Order 999 not found." {
			t.Errorf("Unexpected sentence: %q", got)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels and is idempotent", func(t *testing.T) {
		path := writeOrdersFile(t, "order_id,status,item\n42,shipped,Widget\n")
		catalog := Load(path)

		first := catalog.Cancel("42")
		second := catalog.Cancel("42")

		if first != "Order 42 has been canceled." {
			t.Errorf("Unexpected confirmation: %q", first)
		}
		if second != first {
			t.Errorf("Expected idempotent confirmation, got %q then %q", first, second)
		}
		if got := catalog.Lookup("42"); got != "Order 42: Widget is currently canceled." {
			t.Errorf("Expected canceled status after cancel, got %q", got)
		}
	})

	t.Run("absent order", func(t *testing.T) {
		path := writeOrdersFile(t, "order_id,status,item\n42,shipped,Widget\n")
		catalog := Load(path)

		if got := catalog.Cancel("999"); got != "Order 999 not found." {
			t.Errorf("Unexpected sentence: %q", got)
		}
	})
}
