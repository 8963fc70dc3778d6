package usecase

import (
	"testing"

	"fluxo_notas/internal/domain/entities"
)

func TestWorkingSet_Replace(t *testing.T) {
	w := NewWorkingSet()
	w.Replace([]entities.Nota{{ID: "1"}, {ID: "2"}})
	if w.Len() != 2 {
		t.Fatalf("expected 2 notas, got %d", w.Len())
	}

	w.Replace([]entities.Nota{{ID: "3"}})
	if w.Len() != 1 {
		t.Fatalf("expected replace to drop absent ids, got %d", w.Len())
	}
	if _, ok := w.Get("1"); ok {
		t.Fatalf("expected nota 1 gone after replace")
	}
}

func TestWorkingSet_Merge(t *testing.T) {
	t.Run("merge never deletes", func(t *testing.T) {
		w := NewWorkingSet()
		w.Replace([]entities.Nota{
			{ID: "1", Status: entities.StatusPendente},
			{ID: "2", Status: entities.StatusPendente},
		})

		w.Merge([]entities.Nota{{ID: "1", Status: entities.StatusAprovado}})

		if w.Len() != 2 {
			t.Fatalf("expected 2 notas after merge, got %d", w.Len())
		}
		n, _ := w.Get("1")
		if n.Status != entities.StatusAprovado {
			t.Fatalf("expected nota 1 updated, got %s", n.Status)
		}
		if _, ok := w.Get("2"); !ok {
			t.Fatalf("expected nota 2 untouched by merge")
		}
	})

	t.Run("merge inserts unknown ids", func(t *testing.T) {
		w := NewWorkingSet()
		w.Merge([]entities.Nota{{ID: "9"}})
		if _, ok := w.Get("9"); !ok {
			t.Fatalf("expected nota 9 inserted")
		}
	})

	t.Run("empty ids are skipped", func(t *testing.T) {
		w := NewWorkingSet()
		w.Merge([]entities.Nota{{ID: ""}})
		if w.Len() != 0 {
			t.Fatalf("expected empty set, got %d", w.Len())
		}
	})
}

func TestWorkingSet_Snapshot(t *testing.T) {
	w := NewWorkingSet()
	w.Replace([]entities.Nota{{ID: "10"}, {ID: "2"}, {ID: "1"}})

	snap := w.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 notas, got %d", len(snap))
	}
	// Numeric order, not lexicographic: 1, 2, 10.
	if snap[0].ID != "1" || snap[1].ID != "2" || snap[2].ID != "10" {
		t.Fatalf("unexpected order: %s %s %s", snap[0].ID, snap[1].ID, snap[2].ID)
	}

	// Mutating the snapshot must not affect the set.
	snap[0].Status = entities.StatusFaturado
	n, _ := w.Get("1")
	if n.Status == entities.StatusFaturado {
		t.Fatalf("snapshot mutation leaked into the set")
	}
}
