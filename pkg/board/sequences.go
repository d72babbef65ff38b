package board

// Canonical layout sequences. The terrain sequences double as the tile
// multiset for shuffled layouts, the number sequences as the token
// multiset. Terrain runs over the column ordering, numbers over the
// spiral (deserts skipped), ports clockwise from 12 o'clock.

// standardBeginnerTerrain is the fixed 4-player beginner board, column by
// column.
var standardBeginnerTerrain = []Terrain{
	Forest, Pasture, Desert, Mountains, Hills,
	Hills, Forest, Fields, Fields, Pasture,
	Hills, Forest, Forest, Mountains, Pasture,
	Pasture, Mountains, Fields, Fields,
}

// standardBeginnerNumbers follows the spiral over the 18 non-desert tiles
// of the beginner board.
var standardBeginnerNumbers = []int{
	5, 6, 11, 5, 8, 10, 9, 2, 10, 12, 9, 8, 3, 4, 3, 4, 6, 11,
}

// standardVariableNumbers is the published variable-setup sequence laid
// out alphabetically by position.
var standardVariableNumbers = []int{
	5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11,
}

// standardBeginnerPorts runs clockwise from 12 o'clock.
var standardBeginnerPorts = []Terrain{
	PortOre, PortAny, PortWool, PortAny, PortAny,
	PortBrick, PortLumber, PortAny, PortGrain,
}

// largeBeginnerTerrain is the 5/6-player beginner board (30 tiles, two
// deserts).
var largeBeginnerTerrain = []Terrain{
	Fields, Hills, Fields, Mountains, Mountains, Hills,
	Pasture, Forest, Hills, Fields, Pasture, Mountains,
	Pasture, Mountains, Forest, Forest, Pasture, Fields,
	Hills, Desert, Pasture, Fields, Forest, Hills,
	Desert, Fields, Forest, Pasture, Mountains, Forest,
}

// largeNumbers serves as both the beginner and the variable sequence for
// the 5/6-player board; the published setup uses a single ordering.
var largeNumbers = []int{
	2, 5, 4, 6, 3, 9, 8, 11, 11, 10, 6, 3, 8, 4,
	8, 10, 11, 12, 10, 5, 4, 9, 5, 9, 12, 3, 2, 6,
}

// largeBeginnerPorts runs clockwise from 12 o'clock.
var largeBeginnerPorts = []Terrain{
	PortAny, PortAny, PortBrick, PortWool, PortLumber, PortAny,
	PortGrain, PortAny, PortOre, PortAny, PortWool,
}

// largeFramePorts selects port candidates by position when the physical
// 5th-edition frame dictates the spacing instead of the alternating rule.
// Indexes are into the clockwise-sorted candidate ring.
var largeFramePorts = []int{1, 4, 6, 7, 9, 11, 13, 14, 16, 19, 21}
