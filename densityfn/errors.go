package densityfn

import "errors"

// Sentinel errors for densityfn. Sample/Fill never fail (the node family is
// total); these are reserved for construction-time misuse that a caller can
// branch on with errors.Is.
var (
	// ErrEmptyPoints indicates a node that requires at least one input
	// axis Node (e.g. Spline) was constructed with none.
	ErrEmptyPoints = errors.New("densityfn: at least one input axis required")

	// ErrNilNode indicates a constructor received a nil Node where one was
	// required.
	ErrNilNode = errors.New("densityfn: nil node")
)
