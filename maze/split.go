package maze

import "fmt"

// SplitEntrances returns a copy of g in which the single entrance and its
// 3×3 neighborhood are rewritten from
//
//	...      @#@
//	.@.  to  ###
//	...      @#@
//
// producing four independent agents, one per quadrant.
// The neighborhood must lie in bounds and hold only open floor around the
// entrance; otherwise a wrapped ErrSplitEntrance is returned.
func (g *Grid) SplitEntrances() (*Grid, error) {
	entrances := g.Entrances()
	if len(entrances) != 1 {
		return nil, fmt.Errorf("%w: want exactly one entrance, found %d", ErrSplitEntrance, len(entrances))
	}
	cx, cy := g.Coordinate(entrances[0])
	if cx < 1 || cy < 1 || cx >= g.width-1 || cy >= g.height-1 {
		return nil, fmt.Errorf("%w: entrance at (%d,%d) touches the border", ErrSplitEntrance, cx, cy)
	}

	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			idx := g.Index(cx+dx, cy+dy)
			if (dx != 0 || dy != 0) && g.cells[idx] != OpenByte {
				return nil, fmt.Errorf("%w: cell (%d,%d) is %s, want open", ErrSplitEntrance, cx+dx, cy+dy, g.cells[idx].Kind())
			}
			if dx != 0 && dy != 0 {
				out.cells[idx] = EntranceByte
			} else {
				out.cells[idx] = WallByte
			}
		}
	}

	return out, nil
}
