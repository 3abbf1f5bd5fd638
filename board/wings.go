package board

// Coord is a (row, col) position in the rectangular grid. Wing cells use
// coordinates just outside it.
type Coord struct {
	Row int
	Col int
}

// Wing is a boundary cell outside the rectangular grid. Its geometry breaks
// the regular offset pattern, so its own edges and vertices are listed by
// hand; the regular cells find it through its virtual coordinates.
type Wing struct {
	ID            int
	VirtualCoords []Coord
	Orient        Orientation
	Edges         map[Direction][]int
	Vertices      []int
}

// StandardWings are the four wing cells of the 6x5 board: two on the left
// edge facing right, two on the right edge facing left.
var StandardWings = []Wing{
	{
		ID:            30,
		VirtualCoords: []Coord{{1, -1}, {2, -1}},
		Orient:        OrientRight,
		Edges:         map[Direction][]int{DirUpRight: {5}, DirDownRight: {10}},
		Vertices:      []int{0, 5, 6, 10, 11, 15, 31},
	},
	{
		ID:            31,
		VirtualCoords: []Coord{{3, -1}, {4, -1}},
		Orient:        OrientRight,
		Edges:         map[Direction][]int{DirUpRight: {15}, DirDownRight: {20}},
		Vertices:      []int{10, 15, 16, 20, 21, 25, 30},
	},
	{
		ID:            32,
		VirtualCoords: []Coord{{1, 5}, {2, 5}},
		Orient:        OrientLeft,
		Edges:         map[Direction][]int{DirUpLeft: {9}, DirDownLeft: {14}},
		Vertices:      []int{4, 8, 9, 13, 14, 19, 33},
	},
	{
		ID:            33,
		VirtualCoords: []Coord{{3, 5}, {4, 5}},
		Orient:        OrientLeft,
		Edges:         map[Direction][]int{DirUpLeft: {19}, DirDownLeft: {24}},
		Vertices:      []int{14, 18, 23, 24, 29, 32},
	},
}
