package screen

import "go-firestore-inventory/internal/model"

// ListDiff is the outcome of comparing two rendered product lists. Item
// identity is the record id; item equality is full field equality, which
// covers the derived total.
type ListDiff struct {
	Inserted []string
	Removed  []string
	Changed  []string
}

// Unchanged reports whether the two lists hold the same records with the
// same contents. Order does not matter; an unchanged list must not be
// redrawn, so frequent store push-updates cause no flicker.
func (d ListDiff) Unchanged() bool {
	return len(d.Inserted) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

func DiffProducts(old, new []model.Product) ListDiff {
	oldByID := make(map[string]model.Product, len(old))
	for _, p := range old {
		oldByID[p.ID] = p
	}

	diff := ListDiff{}
	seen := make(map[string]struct{}, len(new))
	for _, p := range new {
		seen[p.ID] = struct{}{}
		prev, ok := oldByID[p.ID]
		if !ok {
			diff.Inserted = append(diff.Inserted, p.ID)
			continue
		}
		if prev != p {
			diff.Changed = append(diff.Changed, p.ID)
		}
	}

	for _, p := range old {
		if _, ok := seen[p.ID]; !ok {
			diff.Removed = append(diff.Removed, p.ID)
		}
	}

	return diff
}
