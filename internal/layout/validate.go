package layout

// ValidateLayout returns a copy of l corrected to fit constraints.
//
// The layout is first rescaled to total 100, then each pane is clamped into
// its bounds. Whatever the clamping removed or added is handed to the panes in
// index order, one at a time, until it is absorbed. This is a single sweep: in
// constraint sets that cannot all be satisfied the result may not total
// exactly 100.
//
// A length mismatch between l and constraints returns a *LayoutShapeError.
func ValidateLayout(l Layout, constraints []PaneConstraints) (Layout, error) {
	if len(l) != len(constraints) {
		return nil, &LayoutShapeError{Want: len(constraints), Got: len(l), Layout: l.Clone()}
	}

	next := l.Clone()
	if next == nil {
		next = Layout{}
	}

	total := next.Sum()
	if len(next) > 0 && !Equal(total, 100) && total > 0 {
		for i, size := range next {
			next[i] = (100 / total) * size
		}
	}

	remainder := 0.0
	for i, unsafe := range next {
		safe := ClampSize(constraints[i], unsafe)
		if unsafe != safe {
			remainder += unsafe - safe
			next[i] = safe
		}
	}

	if !Equal(remainder, 0) {
		for i, prev := range next {
			safe := ClampSize(constraints[i], prev+remainder)
			if prev != safe {
				remainder -= safe - prev
				next[i] = safe
				if Equal(remainder, 0) {
					break
				}
			}
		}
	}

	return next, nil
}
