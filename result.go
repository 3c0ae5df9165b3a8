package pdbfetch

// Result is the outcome of a single identifier's fetch attempt.
// It is produced at dispatch time, reported, and discarded; nothing is
// retained across identifiers.
type Result struct {
	ID   string
	URL  string
	Path string // path of the written artifact; empty on failure
	Hash string // xxhash of the artifact body; empty on failure
	Err  error  // nil on success
}

// Summary aggregates the outcomes of one batch run.
type Summary struct {
	Attempted int
	Saved     int
	Failed    int
}
