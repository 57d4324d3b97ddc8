package app

// invariant reports ok. A violated invariant is a programming error: it
// panics unless built with the release tag, where the caller skips the
// operation instead.
func invariant(ok bool, msg string) bool {
	if !ok && strictInvariants {
		panic("app: " + msg)
	}
	return ok
}
