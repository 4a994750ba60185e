package errcode

// Error code conventions:
// - 0: no error
// - 4xxx: recoverable/warning conditions (flow continues)
// - 5xxx: system errors (flow aborts)
const (
	OK               = 0
	ResumeIncomplete = 4001
	SystemError      = 5000
)
