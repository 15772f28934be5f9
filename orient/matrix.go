package orient

import (
	"gonum.org/v1/gonum/mat"
)

// Screen-space generators: x grows to the right, y grows downward.
var (
	identityMatrix = []float64{1, 0, 0, 1}
	rotateCW       = []float64{0, -1, 1, 0}
	reflectH       = []float64{1, 0, 0, -1}
	reflectV       = []float64{-1, 0, 0, 1}
)

// Unit vectors of the compass sides, indexed by Direction.Index().
var directionVectors = [4][2]float64{
	{0, -1}, // North
	{1, 0},  // East
	{0, 1},  // South
	{-1, 0}, // West
}

// Lookup tables over the eight canonical orientations, filled by init.
var (
	canonical    [8]Orientation
	composeTable [8][8]int
	inverseTable [8]int
	applyTable   [8][4]Direction
)

// Matrix returns the 2×2 integer matrix of o acting on screen vectors.
// The mirror is applied first, so Matrix(o) = R^k · F.
func Matrix(o Orientation) *mat.Dense {
	var base []float64
	switch o.Mirror {
	case MirrorHorizontal:
		base = reflectH
	case MirrorVertical:
		base = reflectV
	default:
		base = identityMatrix
	}
	m := mat.NewDense(2, 2, append([]float64(nil), base...))
	r := mat.NewDense(2, 2, append([]float64(nil), rotateCW...))
	for i := 0; i < o.Rotation.steps(); i++ {
		next := mat.NewDense(2, 2, nil)
		next.Mul(r, m)
		m = next
	}

	return m
}

func init() {
	var (
		i, j int
		o    Orientation
		mats [8]*mat.Dense
	)
	// the twelve pairs land on eight slots
	for _, m := range Mirrors() {
		for _, r := range Rotations() {
			o = Orientation{Rotation: r, Mirror: m}
			canonical[o.index()] = o.Canonical()
		}
	}
	for i, o = range canonical {
		mats[i] = Matrix(o)
	}

	lookup := func(m mat.Matrix) int {
		for k := range mats {
			if mat.Equal(mats[k], m) {
				return k
			}
		}
		panic("orient: matrix outside the dihedral group")
	}

	for i = range canonical {
		for j = range canonical {
			// first i, then j: M_j · M_i
			p := mat.NewDense(2, 2, nil)
			p.Mul(mats[j], mats[i])
			composeTable[i][j] = lookup(p)
		}
		// Rotation and reflection matrices are orthogonal.
		inverseTable[i] = lookup(mats[i].T())

		for _, d := range Directions() {
			v := mat.NewVecDense(2, []float64{directionVectors[d.Index()][0], directionVectors[d.Index()][1]})
			out := mat.NewVecDense(2, nil)
			out.MulVec(mats[i], v)
			applyTable[i][d.Index()] = directionOf(out)
		}
	}
}

func directionOf(v *mat.VecDense) Direction {
	for k, u := range directionVectors {
		if v.AtVec(0) == u[0] && v.AtVec(1) == u[1] {
			return Directions()[k]
		}
	}
	panic("orient: vector is not a compass direction")
}
