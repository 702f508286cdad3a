package convert

// Options holds the markers and tokens the heuristics key on
type Options struct {
	// Marker is the literal text that opens the initialization callback
	Marker string
	// Self is the receiver used by every recognized assignment (e.g. "this")
	Self string
	// ReservedPrefixes drop blocks whose declaration line starts with one of them
	ReservedPrefixes []string
	// CleanupKeyword introduces runtime-only statements removed from kept blocks
	CleanupKeyword string
	// LegacyAnnotations are literal strings stripped from kept blocks
	LegacyAnnotations []string
	// Namespace is the single top-level member of the emitted module
	Namespace string
}

// DefaultOptions returns the options for the p5play addon
func DefaultOptions() Options {
	return Options{
		Marker:            "p5.prototype.registerMethod('init', function p5PlayInit() {",
		Self:              "this",
		ReservedPrefixes:  []string{"this.p5play", "this.angleMode("},
		CleanupKeyword:    "delete",
		LegacyAnnotations: []string{" //end camera class"},
		Namespace:         "p5",
	}
}
