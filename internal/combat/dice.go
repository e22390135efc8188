package combat

const (
	// DieSides is the number of faces on each die.
	DieSides = 6
	// SuccessOn is the lowest face that counts as a success.
	SuccessOn = 5
)

// Roller is the random source behind dice. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// Dice rolls pools of six-sided dice.
type Dice struct {
	rng Roller
}

// NewDice creates dice backed by rng. A seeded source makes rolls reproducible.
func NewDice(rng Roller) *Dice {
	return &Dice{rng: rng}
}

// Roll returns n die faces. Non-positive n rolls nothing.
func (d *Dice) Roll(n int) []int {
	if n <= 0 {
		return nil
	}
	faces := make([]int, n)
	for i := range faces {
		faces[i] = d.rng.Intn(DieSides) + 1
	}
	return faces
}

// Successes counts faces at or above SuccessOn.
func Successes(faces []int) int {
	count := 0
	for _, f := range faces {
		if f >= SuccessOn {
			count++
		}
	}
	return count
}
