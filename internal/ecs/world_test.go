package ecs

import "testing"

// stub components used only in tests
type nameComp struct{ name string }

func (nameComp) Type() ComponentType { return 1 }

type markComp struct{}

func (markComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == NilEntity || b == NilEntity {
		t.Fatal("expected non-nil entity IDs")
	}
	if b <= a {
		t.Fatalf("IDs not increasing: %d then %d", a, b)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, nameComp{name: "first"})
	w.Add(id, nameComp{name: "second"})

	c, ok := w.Get(id, ComponentType(1)).(nameComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if c.name != "second" {
		t.Fatalf("name = %q; want %q", c.name, "second")
	}
}

func TestRemoveDetachesComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, nameComp{name: "x"})
	w.Add(id, markComp{})
	w.Remove(id, ComponentType(2))

	if w.Has(id, ComponentType(2)) {
		t.Fatal("component should be gone after Remove")
	}
	if got := w.Query(ComponentType(1), ComponentType(2)); len(got) != 0 {
		t.Fatalf("Query = %v; want none", got)
	}
	if got := w.Query(ComponentType(1)); len(got) != 1 || got[0] != id {
		t.Fatalf("Query = %v; want [%d]", got, id)
	}
}

func TestQueryOrderedByID(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for range 20 {
		id := w.CreateEntity()
		w.Add(id, nameComp{})
		want = append(want, id)
	}
	for run := 0; run < 5; run++ {
		got := w.Query(ComponentType(1))
		if len(got) != len(want) {
			t.Fatalf("len = %d; want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Query()[%d] = %d; want %d", i, got[i], want[i])
			}
		}
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	w.Add(both, nameComp{})
	w.Add(both, markComp{})

	onlyName := w.CreateEntity()
	w.Add(onlyName, nameComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 || results[0] != both {
		t.Fatalf("Query = %v; want [%d]", results, both)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	w.Add(a, nameComp{name: "a"})
	b := w.CreateEntity()
	w.Add(b, nameComp{name: "b"})

	got := w.First(func(id EntityID) bool {
		return w.Get(id, ComponentType(1)).(nameComp).name == "b"
	}, ComponentType(1))
	if got != b {
		t.Errorf("First = %d; want %d", got, b)
	}
	if got := w.First(nil, ComponentType(1)); got != a {
		t.Errorf("First(nil) = %d; want %d", got, a)
	}
	if got := w.First(nil, ComponentType(9)); got != NilEntity {
		t.Errorf("First on empty store = %d; want NilEntity", got)
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Remove(id, ComponentType(99))
	if w.Has(id, ComponentType(99)) {
		t.Fatal("Has should be false for a component never added")
	}
}
