package pin

import "errors"

// ErrPlanInfeasible indicates a mandatory input of some operator cannot fit
// in the writable SPM budget (SpmCapacity * (K-1)) by itself.
var ErrPlanInfeasible = errors.New("pin: plan infeasible")
