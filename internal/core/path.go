package core

// Path is an ordered sequence of sub-step positions.
type Path []Point

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// axisRange reproduces the reference implementation's
// range(round((begin+dir*Speed)/Speed), round((end+dir*Speed)/Speed), dir)
// as a list of integer sub-step units.
func axisRange(begin, end float64, dir int) []int {
	if dir == 0 {
		return nil
	}
	beginUnits := roundDiv(begin, Speed) + dir
	endUnits := roundDiv(end, Speed) + dir

	var out []int
	if dir > 0 {
		for i := beginUnits; i < endUnits; i += dir {
			out = append(out, i)
		}
	} else {
		for i := beginUnits; i > endUnits; i += dir {
			out = append(out, i)
		}
	}
	return out
}

func roundDiv(v, unit float64) int {
	// math.Round is avoided here to keep this file import-free; see
	// point.go for the canonical rounding helper used elsewhere.
	q := v / unit
	if q >= 0 {
		return int(q + 0.5)
	}
	return -int(-q + 0.5)
}

// AutoGenPath produces the shortest sub-step path from begin to end,
// restricted to axis-aligned unit-Speed moves, preferring the
// larger-delta axis first. If defaultPath is non-empty, its last point
// becomes the effective begin and the returned path is
// defaultPath || horizontal-leg || vertical-leg (or vertical-then-
// horizontal, depending on which delta is larger). Returns the new path
// and its length in sub-steps (the new ETA).
func AutoGenPath(begin, end Point, defaultPath Path) (Path, int) {
	b := begin
	if len(defaultPath) != 0 {
		b = defaultPath[len(defaultPath)-1]
	}

	deltaX := abs(b.X - end.X)
	deltaY := abs(b.Y - end.Y)

	if deltaX == 0 && deltaY == 0 {
		out := defaultPath.Clone()
		return out, len(out)
	}

	dirX := signFloat(b.X, end.X)
	dirY := signFloat(b.Y, end.Y)

	path := defaultPath.Clone()

	appendHorizontal := func(fixedY float64) {
		for _, i := range axisRange(b.X, end.X, dirX) {
			path = append(path, NewPoint(float64(i)*Speed, fixedY))
		}
	}
	appendVertical := func(fixedX float64) {
		for _, i := range axisRange(b.Y, end.Y, dirY) {
			path = append(path, NewPoint(fixedX, float64(i)*Speed))
		}
	}

	if deltaX > deltaY {
		appendHorizontal(b.Y)
		if deltaY > 0 {
			appendVertical(end.X)
		}
	} else {
		appendVertical(b.X)
		if deltaX > 0 {
			appendHorizontal(end.Y)
		}
	}

	return path, len(path)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// InterpolateCells expands the straight-line move between two adjacent
// grid cells (differing on exactly one axis) into its Speed-sized
// sub-steps, exclusive of the starting point. It is used by the
// constrained planner to turn a cell-granularity BFS path into a
// sub-step Path.
func InterpolateCells(from Point, toX, toY float64) Path {
	var out Path
	if from.X != toX {
		dir := signFloat(from.X, toX)
		for _, i := range axisRange(from.X, toX, dir) {
			out = append(out, NewPoint(float64(i)*Speed, from.Y))
		}
	} else {
		dir := signFloat(from.Y, toY)
		for _, i := range axisRange(from.Y, toY, dir) {
			out = append(out, NewPoint(from.X, float64(i)*Speed))
		}
	}
	return out
}
