package griddler

/*

the solve driver

*/

// A Status is the driver's view of a solve in progress.  Solved
// and Stuck are terminal; Running is both the initial state and
// the result of exhausting an explicit pass budget before
// reaching either terminal.
type Status int

// The driver states.
const (
	Running Status = iota
	Solved
	Stuck
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	}
	return "unknown"
}

// Options control a solve.  BruteForce enables the exhaustive
// tier; MaxPasses, when positive, bounds the number of outer
// passes (coarse cancellation — there is no mid-rule interrupt);
// Trace, when set, is called with the grid at the start of every
// pass, which is how the CLI renders progress.
type Options struct {
	BruteForce bool
	MaxPasses  int
	Trace      func(*Grid)
}

// Solve drives the rule library over the grid until it is solved
// or no enabled rule makes progress.  The rules are tried in
// their fixed priority order; as soon as one of them changes any
// cell the order restarts from the top, so the cheap rules get
// every chance to run before the expensive ones.  A full pass
// with no progress means Stuck.
//
// An error from Solve is a rule-unsoundness fault (see
// Grid.Apply); the grid contents are unreliable after one.
func Solve(g *Grid, opts Options) (Status, error) {
	rules := Rules()
	for pass := 0; ; pass++ {
		if g.Solved() {
			return Solved, nil
		}
		if opts.MaxPasses > 0 && pass >= opts.MaxPasses {
			return Running, nil
		}
		if opts.Trace != nil {
			opts.Trace(g)
		}

		progress := false
		for _, rule := range rules {
			if rule.Brute && !opts.BruteForce {
				continue
			}
			p, err := g.Apply(rule)
			if err != nil {
				return Running, err
			}
			if p {
				progress = true
				break
			}
		}
		if !progress {
			return Stuck, nil
		}
	}
}
