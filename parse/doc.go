// Package parse reads JSON and YAML text into values.
//
// # Usage
//
//	v, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// YAML, keeping keys in document order
//	v, err := parse.Parse(data, parse.ParseYAML(), parse.ParseOrdered(true))
//
//	// Deliver events to any stream.Handler
//	err := parse.ParseTo(data, handler)
//
// Lexing is delegated to github.com/goccy/go-json (JSON) and gopkg.in/yaml.v3
// (YAML). JSON integers become int64, or uint64 above the int64 range, or a
// string tagged !bigint beyond that. Other numbers become doubles, or a
// string tagged !bigdec when out of range. YAML !!binary becomes a byte
// string and !!timestamp a string tagged !datetime. YAML local tags naming a
// semantic tag (e.g. !base64) are kept on the value.
//
// # Related Packages
//
//   - github.com/signadot/jval/value - Value representation
//   - github.com/signadot/jval/encode - Encode values to text
//   - github.com/signadot/jval/stream - Event interface
package parse
