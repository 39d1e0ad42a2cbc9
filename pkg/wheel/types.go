// pkg/wheel/types.go

package wheel

// OptionList is the validated, ordered set of user-entered choices for one
// run. It is built once by collection and never mutated afterwards.
type OptionList []string

// Selection is a single drawn option. Index is zero-based; presentation
// layers render it one-based.
type Selection struct {
	Index int
	Text  string
}

// SpinResult holds the intermediate rotation-phase draws plus the final
// selection. Phases exist only for the rotation trace; Final carries the
// uniform-selection contract.
type SpinResult struct {
	Phases []Selection
	Final  Selection
}
