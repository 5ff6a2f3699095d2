package enchant

import (
	"testing"

	"github.com/goldenstack/enchantd/internal/domain"
)

func TestCollidesWithSelf(t *testing.T) {
	a := &Data{ID: "a"}
	other := &Data{ID: "a"}
	if !a.CollidesWith(other) {
		t.Error("records sharing an ID must collide")
	}
}

func TestCollidesWithIsSymmetricInEffect(t *testing.T) {
	// Only a lists b, but the collision must hold both ways
	a := &Data{ID: "a", Incompatible: []domain.EnchantmentID{"b"}}
	b := &Data{ID: "b"}

	if !a.CollidesWith(b) {
		t.Error("a lists b as incompatible, expected collision")
	}
	if !b.CollidesWith(a) {
		t.Error("collision must hold from the unlisted side too")
	}
}

func TestCollidesWithUnrelated(t *testing.T) {
	a := &Data{ID: "a", Incompatible: []domain.EnchantmentID{"c"}}
	b := &Data{ID: "b"}
	if a.CollidesWith(b) || b.CollidesWith(a) {
		t.Error("unrelated records must not collide")
	}
}

func TestBoundsEvaluateThroughRecord(t *testing.T) {
	d := &Data{
		ID:      "x",
		MinCost: Adjusted(1, 11),
		MaxCost: AddToMin(20),
	}
	if got := d.MinimumLevel(3); got != 23 {
		t.Errorf("MinimumLevel(3) = %d, want 23", got)
	}
	if got := d.MaximumLevel(3); got != 43 {
		t.Errorf("MaximumLevel(3) = %d, want 43", got)
	}
}
