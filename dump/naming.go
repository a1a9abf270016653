package dump

// TimestampLayout is the Go time layout for fallback artifact names,
// rendered from the current UTC time. Emissions without an explicit name
// that land in the same clock second resolve to the same artifact; the
// later write wins.
const TimestampLayout = "out_2006_0102_150405"

// resolveName returns the caller's name verbatim, or a clock-derived
// fallback when the name is absent. The fallback is always a valid Go
// package name; a caller-supplied name is used as given.
func (e *Emitter) resolveName(name string) string {
	if name != "" {
		return name
	}
	return e.now().UTC().Format(TimestampLayout)
}
