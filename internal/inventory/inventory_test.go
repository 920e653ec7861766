package inventory

import "testing"

func TestAddAppendsInOrder(t *testing.T) {
	inv := New()
	if !inv.IsEmpty() {
		t.Fatal("Expected new inventory to be empty")
	}

	inv.Add(Item{Name: "old map", Icon: "map"})
	inv.Add(Item{Name: "apple", Icon: "food"})
	inv.Add(Item{Name: "apple", Icon: "food"})

	items := inv.Items()
	if len(items) != 3 {
		t.Fatalf("Expected 3 items (no stacking), got %d", len(items))
	}
	if items[0].Name != "old map" || items[2].Name != "apple" {
		t.Errorf("Unexpected order: %+v", items)
	}
	if !inv.Has("apple") || inv.Has("sword") {
		t.Error("Has returned the wrong answer")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	inv := New()
	inv.Add(Item{Name: "old map"})

	items := inv.Items()
	items[0].Name = "changed"
	if inv.Items()[0].Name != "old map" {
		t.Error("Mutating the returned slice changed the inventory")
	}
}

func TestOnChangeFiresPerAdd(t *testing.T) {
	inv := New()
	calls := 0
	inv.OnChange = func() {
		calls++
		// Reading inside the callback must not deadlock
		if inv.Count() != calls {
			t.Errorf("Expected %d items inside callback, got %d", calls, inv.Count())
		}
	}

	inv.Add(Item{Name: "a"})
	inv.Add(Item{Name: "b"})
	if calls != 2 {
		t.Errorf("Expected 2 change notifications, got %d", calls)
	}
	if inv.Debug() != "Inventory{2 items}" {
		t.Errorf("Unexpected debug string %q", inv.Debug())
	}
}
