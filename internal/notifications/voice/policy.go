package voice

import "supportcall/internal/types"

// callSeverities is the allow-list of severities that place a call. Matching
// is exact and case-sensitive; "high" is deliberately absent.
var callSeverities = map[types.Severity]struct{}{
	types.SeverityUrgent:   {},
	types.SeverityCritical: {},
}

// ShouldNotify reports whether a case of the given severity warrants an
// outbound call.
func ShouldNotify(severity types.Severity) bool {
	_, ok := callSeverities[severity]
	return ok
}
