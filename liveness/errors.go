package liveness

import "errors"

// ErrUnknownTensor indicates a liveness lookup for a tensor absent from the
// liveness map: the tensor is never referenced by any scheduled operator, or
// the caller passed a TensorID from a different graph.
var ErrUnknownTensor = errors.New("liveness: unknown tensor")
