// Package quality defines the auto-check hook run against incoming
// submissions. Detection itself (PII patterns, profanity lists, duplicate
// hashing) is pluggable; the platform only stores and serves the flags.
package quality

// Result carries the flags attached to a submission at intake time.
type Result struct {
	PIIKinds  []string
	Profanity bool
	Duplicate bool
}

// Checker inspects the combined text of a submission (free text plus
// extracted file previews).
type Checker interface {
	Check(text string) Result
}

// NoopChecker flags nothing. It is the default when no detector is wired in.
type NoopChecker struct{}

func (NoopChecker) Check(string) Result { return Result{} }
