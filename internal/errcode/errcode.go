package errcode

// Error code convention:
// - 0: no error
// - 4xxx: recoverable/user-facing errors (the app keeps running)
// - 5xxx: system errors (the operation is aborted)
const (
	OK             = 0
	SurfaceMissing = 4001
	ImportFailed   = 4002
	PhotoRejected  = 4003
	RenderFailed   = 5001
	StorageFailed  = 5002
	SystemError    = 5000
)
