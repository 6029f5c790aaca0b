package client

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/BelskviK/Styler-sub001/models"
)

func named(name string, status models.AppointmentStatus) models.Appointment {
	return appt(uuid.New(), name, status)
}

func TestDeriveViewFiltersCaseInsensitively(t *testing.T) {
	items := []models.Appointment{
		named("Jane Doe", models.StatusPending),
		named("John Smith", models.StatusPending),
		named("MARY JANE", models.StatusConfirmed),
	}

	view := DeriveView(items, ViewOptions{Search: "jane"})

	if len(view) > len(items) {
		t.Fatalf("view longer than input: %d > %d", len(view), len(items))
	}
	if len(view) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(view))
	}
	for _, item := range view {
		if !strings.Contains(strings.ToLower(item.CustomerName), "jane") {
			t.Fatalf("item %q does not match filter", item.CustomerName)
		}
	}
}

func TestDeriveViewEmptySearchKeepsEverything(t *testing.T) {
	items := []models.Appointment{
		named("Jane", models.StatusPending),
		named("John", models.StatusConfirmed),
	}
	view := DeriveView(items, ViewOptions{})
	if len(view) != len(items) {
		t.Fatalf("expected all items, got %d", len(view))
	}
}

func TestDeriveViewSortIsStable(t *testing.T) {
	// All share the same status; relative order must survive the sort.
	items := []models.Appointment{
		named("Charlie", models.StatusPending),
		named("Alice", models.StatusPending),
		named("Bob", models.StatusPending),
	}

	view := DeriveView(items, ViewOptions{SortKey: "status"})

	want := []string{"Charlie", "Alice", "Bob"}
	for i, item := range view {
		if item.CustomerName != want[i] {
			t.Fatalf("stable sort violated at %d: got %q, want %q", i, item.CustomerName, want[i])
		}
	}
}

func TestDeriveViewSortsByDottedField(t *testing.T) {
	items := []models.Appointment{
		named("Charlie", models.StatusPending),
		named("Alice", models.StatusPending),
		named("Bob", models.StatusPending),
	}

	asc := DeriveView(items, ViewOptions{SortKey: "customerName"})
	if asc[0].CustomerName != "Alice" || asc[2].CustomerName != "Charlie" {
		t.Fatalf("ascending sort wrong: %v", names(asc))
	}

	desc := DeriveView(items, ViewOptions{SortKey: "customerName", Descending: true})
	if desc[0].CustomerName != "Charlie" || desc[2].CustomerName != "Alice" {
		t.Fatalf("descending sort wrong: %v", names(desc))
	}
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	items := []models.Appointment{
		named("Charlie", models.StatusPending),
		named("Alice", models.StatusPending),
	}

	DeriveView(items, ViewOptions{SortKey: "customerName", Search: "a"})

	if items[0].CustomerName != "Charlie" || items[1].CustomerName != "Alice" {
		t.Fatalf("input mutated: %v", names(items))
	}
}

func TestDeriveViewSearchableFieldsConfigurable(t *testing.T) {
	a := named("Jane", models.StatusPending)
	a.CustomerPhone = "15550001111"
	b := named("John", models.StatusPending)
	b.CustomerPhone = "15559992222"

	view := DeriveView([]models.Appointment{a, b}, ViewOptions{
		Search:       "999",
		SearchFields: []string{"customerName", "customerPhone"},
	})

	if len(view) != 1 || view[0].CustomerPhone != "15559992222" {
		t.Fatalf("expected phone match only, got %v", view)
	}
}

func TestDeriveViewUnknownSortKeyKeepsOrder(t *testing.T) {
	items := []models.Appointment{
		named("Charlie", models.StatusPending),
		named("Alice", models.StatusPending),
	}
	view := DeriveView(items, ViewOptions{SortKey: "noSuchField"})
	if view[0].CustomerName != "Charlie" || view[1].CustomerName != "Alice" {
		t.Fatalf("unknown sort key should keep order, got %v", names(view))
	}
}

func names(items []models.Appointment) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.CustomerName
	}
	return out
}
