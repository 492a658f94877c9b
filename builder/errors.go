package builder

import "errors"

// Error policy: only package-level sentinels are exposed; implementations
// attach context via %w and callers branch with errors.Is. Constructors
// never panic on runtime input.

// ErrTooFewPoints indicates a point count below the constructor's minimum
// (RandomPoints needs n >= 1, FromPoints needs a non-empty slice).
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrDuplicatePointID indicates two points in one construction share an ID.
// Point identity is the ID string; coordinates may coincide freely.
var ErrDuplicatePointID = errors.New("builder: duplicate point id")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRecord indicates a malformed line in a point file: wrong field
// count or a field that does not parse.
var ErrBadRecord = errors.New("builder: malformed point record")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor (nil constructor, graph creation failure).
var ErrConstructFailed = errors.New("builder: construction failed")
