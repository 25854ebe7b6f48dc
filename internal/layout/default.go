package layout

// ComputeDefaultLayout assigns every pane with a DefaultSize that size and
// splits what is left of 100 evenly among the rest.
//
// The result is not clamped; pass it through ValidateLayout before use.
func ComputeDefaultLayout(constraints []PaneConstraints) Layout {
	out := make(Layout, len(constraints))

	assigned := 0
	remaining := 100.0

	for i, c := range constraints {
		if c.DefaultSize != nil {
			assigned++
			out[i] = *c.DefaultSize
			remaining -= *c.DefaultSize
		}
	}

	for i, c := range constraints {
		if c.DefaultSize != nil {
			continue
		}
		size := remaining / float64(len(constraints)-assigned)
		assigned++
		out[i] = size
		remaining -= size
	}

	return out
}
