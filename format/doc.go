// Package format names the text formats values are read from and written
// to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	v, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/jval/parse - Parse text to values
//   - github.com/signadot/jval/encode - Encode values to text
package format
