package pin

// SpmStatus is a per-step, per-SPM capacity snapshot.
type SpmStatus struct {
	// BytesUsed is the number of bytes currently claimed on this SPM.
	BytesUsed int64

	// BytesFree is Capacity - BytesUsed.
	BytesFree int64

	// IsOutput marks the output pad; the planner never writes pins here.
	IsOutput bool
}

// NewSpmStatus builds an SpmStatus for an SPM of the given capacity with
// bytesUsed already claimed.
func NewSpmStatus(capacity, bytesUsed int64, isOutput bool) SpmStatus {
	return SpmStatus{
		BytesUsed: bytesUsed,
		BytesFree: capacity - bytesUsed,
		IsOutput:  isOutput,
	}
}
