package value

// The Must functions are the raising counterparts of the error-returning
// accessors. They panic with the error the accessor would have returned.

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func (v Value) MustBool() bool                     { return must(v.AsBool()) }
func (v Value) MustInt64() int64                   { return must(v.AsInt64()) }
func (v Value) MustUint64() uint64                 { return must(v.AsUint64()) }
func (v Value) MustDouble() float64                { return must(v.AsDouble()) }
func (v Value) MustString() string                 { return must(v.AsString()) }
func (v Value) MustStringView() string             { return must(v.AsStringView()) }
func (v Value) MustBytes(hint SemanticTag) []byte  { return must(v.AsBytes(hint)) }
func (v Value) MustAt(i int) *Value                { return must(v.At(i)) }
func (v Value) MustAtKey(k string) *Value          { return must(v.AtKey(k)) }
func (v *Value) MustGetPath(path ...string) *Value { return must(v.GetPath(path...)) }

func MustInteger[T integer](v Value) T {
	return must(AsInteger[T](v))
}
