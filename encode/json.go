package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

// JSONWriter is a stream.Handler writing JSON text.
type JSONWriter struct {
	w      io.Writer
	es     *EncState
	frames []jsonFrame
	// afterKey is set between a Key and its value.
	afterKey bool
	err      error
}

type jsonFrame struct {
	obj bool
	n   int
}

var _ stream.Handler = (*JSONWriter)(nil)

// NewJSONWriter returns a JSON writer configured by es. A nil es writes
// compact JSON.
func NewJSONWriter(w io.Writer, es *EncState) *JSONWriter {
	if es == nil {
		es = &EncState{}
	}
	return &JSONWriter{w: w, es: es}
}

func (j *JSONWriter) write(s string) error {
	if j.err != nil {
		return j.err
	}
	j.err = writeString(j.w, s)
	return j.err
}

func (j *JSONWriter) newline(depth int) error {
	if j.es.indent <= 0 {
		return nil
	}
	return j.write("\n" + strings.Repeat(" ", depth*j.es.indent))
}

// sep writes what precedes an array element or object key.
func (j *JSONWriter) sep() error {
	n := len(j.frames)
	if n == 0 {
		return nil
	}
	f := &j.frames[n-1]
	if f.n > 0 {
		t := value.ArrayType
		if f.obj {
			t = value.ObjectType
		}
		if err := j.write(j.es.color(t, SepColor, ",")); err != nil {
			return err
		}
	}
	f.n++
	return j.newline(n)
}

// begin writes what precedes any value.
func (j *JSONWriter) begin() error {
	if j.afterKey {
		j.afterKey = false
		return nil
	}
	return j.sep()
}

func (j *JSONWriter) scalar(t value.Type, s string) error {
	if err := j.begin(); err != nil {
		return err
	}
	return j.write(j.es.color(t, ValueColor, s))
}

func quote(s string) string {
	d, err := json.MarshalNoEscape(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}

func (j *JSONWriter) Null(value.SemanticTag) error {
	return j.scalar(value.NullType, "null")
}

func (j *JSONWriter) Bool(b bool, _ value.SemanticTag) error {
	return j.scalar(value.BoolType, strconv.FormatBool(b))
}

func (j *JSONWriter) Int64(i int64, _ value.SemanticTag) error {
	return j.scalar(value.Int64Type, strconv.FormatInt(i, 10))
}

func (j *JSONWriter) Uint64(u uint64, _ value.SemanticTag) error {
	return j.scalar(value.Uint64Type, strconv.FormatUint(u, 10))
}

func (j *JSONWriter) Half(bits uint16, _ value.SemanticTag) error {
	return j.scalar(value.HalfType, formatNumber(value.DecodeHalf(bits)))
}

func (j *JSONWriter) Double(f float64, _ value.SemanticTag) error {
	return j.scalar(value.DoubleType, formatNumber(f))
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return value.FormatFloat(f)
}

func (j *JSONWriter) String(s string, tag value.SemanticTag) error {
	if tag.IsNumber() && isJSONNumber(s) {
		return j.scalar(value.DoubleType, s)
	}
	return j.scalar(value.StringType, quote(s))
}

// isJSONNumber reports whether s is a JSON number literal.
func isJSONNumber(s string) bool {
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}

func (j *JSONWriter) ByteString(b []byte, tag value.SemanticTag) error {
	return j.scalar(value.ByteStringType, quote(value.EncodeBytes(b, tag)))
}

func (j *JSONWriter) open(obj bool, t value.Type, s string) error {
	if err := j.begin(); err != nil {
		return err
	}
	j.frames = append(j.frames, jsonFrame{obj: obj})
	return j.write(j.es.color(t, SepColor, s))
}

func (j *JSONWriter) close(t value.Type, s string) error {
	n := len(j.frames)
	f := j.frames[n-1]
	j.frames = j.frames[:n-1]
	if f.n > 0 {
		if err := j.newline(n - 1); err != nil {
			return err
		}
	}
	return j.write(j.es.color(t, SepColor, s))
}

func (j *JSONWriter) BeginArray(int, value.SemanticTag) error {
	return j.open(false, value.ArrayType, "[")
}

func (j *JSONWriter) EndArray() error {
	return j.close(value.ArrayType, "]")
}

func (j *JSONWriter) BeginObject(int, value.SemanticTag) error {
	return j.open(true, value.ObjectType, "{")
}

func (j *JSONWriter) Key(k string) error {
	if err := j.sep(); err != nil {
		return err
	}
	colon := ":"
	if j.es.indent > 0 {
		colon = ": "
	}
	j.afterKey = true
	return j.write(j.es.color(value.ObjectType, FieldColor, quote(k)) + j.es.color(value.ObjectType, SepColor, colon))
}

func (j *JSONWriter) EndObject() error {
	return j.close(value.ObjectType, "}")
}

// Flush terminates the value with a newline.
func (j *JSONWriter) Flush() error {
	return j.write("\n")
}
