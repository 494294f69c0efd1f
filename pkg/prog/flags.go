package prog

import "flag"

// FlagSet wraps a [flag.FlagSet] and provides access to flags shared by
// multiple subprograms.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it on
// first use.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output of -version, -buildinfo and -parseonly in JSON")
		fs.json = &json
	}
	return fs.json
}
