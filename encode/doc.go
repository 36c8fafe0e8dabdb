// Package encode writes values as JSON or YAML text.
//
// # Usage
//
//	v := value.NewObject(
//	    value.Member{Key: "name", Value: value.String("alice")},
//	    value.Member{Key: "age", Value: value.Int(30)},
//	)
//	err := encode.Encode(v, os.Stdout)
//
//	// YAML with terminal colors
//	err := encode.Encode(v, os.Stdout,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// Compact JSON
//	s := encode.MustString(v, encode.EncodeIndent(0))
//
// JSON output carries no tags: byte strings are written as text according
// to their tag (base64url by default), strings tagged !bigint, !bigdec or
// !bigfloat are written as bare numbers and non-finite doubles as null.
// YAML output keeps scalar tags in tag syntax.
//
// # Related Packages
//
//   - github.com/signadot/jval/value - Value representation
//   - github.com/signadot/jval/parse - Parse text to values
package encode
