package store

import (
	"testing"

	"github.com/google/uuid"

	"opsdesk/internal/models"
)

func TestCacheMutations(t *testing.T) {
	var c cache[models.Order]

	if _, ready := c.snapshot(); ready {
		t.Fatal("fresh cache should not be ready")
	}

	first := models.Order{ID: uuid.New(), Customer: "first"}
	second := models.Order{ID: uuid.New(), Customer: "second"}
	c.replaceAll([]models.Order{first})

	if _, ready := c.snapshot(); !ready {
		t.Fatal("cache should be ready after replaceAll")
	}

	c.prepend(second)
	rows, _ := c.snapshot()
	if len(rows) != 2 || rows[0].ID != second.ID {
		t.Fatalf("prepend order wrong: %v", rows)
	}

	updated := first
	updated.Customer = "renamed"
	c.replace(updated)
	got, ok := c.find(first.ID)
	if !ok || got.Customer != "renamed" {
		t.Fatalf("replace did not land: %+v ok=%v", got, ok)
	}

	c.remove(second.ID)
	rows, _ = c.snapshot()
	if len(rows) != 1 || rows[0].ID != first.ID {
		t.Fatalf("remove left %v", rows)
	}

	if _, ok := c.find(second.ID); ok {
		t.Fatal("removed id still findable")
	}
}

func TestCacheSnapshotIsACopy(t *testing.T) {
	var c cache[models.Order]
	c.replaceAll([]models.Order{{ID: uuid.New(), Customer: "a"}})

	rows, _ := c.snapshot()
	rows[0].Customer = "mutated"

	again, _ := c.snapshot()
	if again[0].Customer != "a" {
		t.Fatal("snapshot aliases internal storage")
	}
}
