package enchant

// LevelFunc computes an integer power-level bound for an enchantment at a
// candidate level. Implementations must be stateless, total and deterministic.
// All the bound shapes used by the default dataset are here, but callers are
// free to install their own.
type LevelFunc func(d *Data, level int) int

// Constant returns a LevelFunc that always yields value.
func Constant(value int) LevelFunc {
	return func(d *Data, level int) int {
		return value
	}
}

// Multiply returns a LevelFunc yielding value * level.
func Multiply(value int) LevelFunc {
	return func(d *Data, level int) int {
		return value * level
	}
}

// Adjusted returns a LevelFunc yielding min + (level-1) * step.
func Adjusted(min, step int) LevelFunc {
	return func(d *Data, level int) int {
		return min + (level-1)*step
	}
}

// Basic returns a LevelFunc yielding min + level * step.
func Basic(min, step int) LevelFunc {
	return func(d *Data, level int) int {
		return min + level*step
	}
}

// AddToMin returns a LevelFunc yielding the record's own minimum bound at the
// given level, plus value. Only valid as a maximum bound: installing it as a
// record's minimum bound recurses indefinitely, and the engine does not guard
// against that.
func AddToMin(value int) LevelFunc {
	return func(d *Data, level int) int {
		return d.MinimumLevel(level) + value
	}
}

// AddToDefault returns a LevelFunc yielding (1 + level*10) + value.
func AddToDefault(value int) LevelFunc {
	return func(d *Data, level int) int {
		return (1 + level*10) + value
	}
}
