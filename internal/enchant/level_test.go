package enchant

import "testing"

func TestConstant(t *testing.T) {
	f := Constant(50)
	for level := 1; level <= 5; level++ {
		if got := f(nil, level); got != 50 {
			t.Errorf("Constant(50)(%d) = %d, want 50", level, got)
		}
	}
}

func TestMultiply(t *testing.T) {
	f := Multiply(10)
	cases := map[int]int{1: 10, 2: 20, 3: 30}
	for level, want := range cases {
		if got := f(nil, level); got != want {
			t.Errorf("Multiply(10)(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestAdjustedStartsAtMin(t *testing.T) {
	// The first level always evaluates to min regardless of step
	for _, step := range []int{0, 1, 8, 11, 20} {
		f := Adjusted(5, step)
		if got := f(nil, 1); got != 5 {
			t.Errorf("Adjusted(5, %d)(1) = %d, want 5", step, got)
		}
	}

	f := Adjusted(1, 11)
	if got := f(nil, 4); got != 34 {
		t.Errorf("Adjusted(1, 11)(4) = %d, want 34", got)
	}
}

func TestBasicIncludesFirstStep(t *testing.T) {
	f := Basic(5, 7)
	cases := map[int]int{1: 12, 2: 19, 3: 26}
	for level, want := range cases {
		if got := f(nil, level); got != want {
			t.Errorf("Basic(5, 7)(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestAddToMin(t *testing.T) {
	d := &Data{MinCost: Adjusted(10, 8)}
	f := AddToMin(8)
	cases := map[int]int{1: 18, 2: 26, 4: 42}
	for level, want := range cases {
		if got := f(d, level); got != want {
			t.Errorf("AddToMin(8)(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestAddToDefault(t *testing.T) {
	f := AddToDefault(50)
	for level := 1; level <= 10; level++ {
		want := 1 + level*10 + 50
		if got := f(nil, level); got != want {
			t.Errorf("AddToDefault(50)(%d) = %d, want %d", level, got, want)
		}
	}
}
