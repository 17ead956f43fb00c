package aesutil

// Result is the outcome of an operation that may be skipped because of blank input.
// The zero value is a successful empty text.
type Result struct {
	text    string
	skipped bool
}

func value(text string) Result {
	return Result{text: text}
}

func skipped() Result {
	return Result{skipped: true}
}

// Text returns the produced text, or "" for a skipped result.
func (r Result) Text() string {
	return r.text
}

// Skipped reports whether the operation was skipped because of blank input.
func (r Result) Skipped() bool {
	return r.skipped
}

// Get returns the text and true, or "" and false for a skipped result.
func (r Result) Get() (string, bool) {
	return r.text, !r.skipped
}
