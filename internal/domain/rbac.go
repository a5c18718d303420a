package domain

// EnforceRequest is one lookup in the policy table.
type EnforceRequest struct {
	ActingRole Role
	TargetRole Role
	Operation  Operation
}
