package ron

import "strconv"

// Value is a single node of a parsed document tree. The concrete types are
// String, Int, Float, Bool, Optional, Sequence and *Mapping; consumers are
// expected to switch over all of them.
type Value interface {
	value()
}

// String is a text scalar. Unrecognized input fragments are also captured
// as String by the parser's fallback path.
type String string

// Int is an integer scalar
type Int int64

// Float is a decimal scalar
type Float float64

// Bool is a boolean scalar
type Bool bool

// Optional wraps a value that may be absent. A nil Inner is the absent
// state and serializes as None; a present value serializes as Some(...).
type Optional struct {
	Inner Value
}

// Sequence is an ordered list of values
type Sequence []Value

// Entry is one key/value pair of a Mapping
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an ordered collection of key/value pairs. Keys are unique;
// Set keeps the first position of a key and the last value written to it.
type Mapping struct {
	Entries []Entry
}

func (String) value()   {}
func (Int) value()      {}
func (Float) value()    {}
func (Bool) value()     {}
func (Optional) value() {}
func (Sequence) value() {}
func (*Mapping) value() {}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v under key. An existing entry is replaced in place so the
// last write wins without reordering.
func (m *Mapping) Set(key string, v Value) {
	for i, e := range m.Entries {
		if e.Key == key {
			m.Entries[i].Value = v
			return
		}
	}
	m.Entries = append(m.Entries, Entry{Key: key, Value: v})
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// GetString returns the string stored under key, or fallback when the key
// is missing or not a text scalar.
func (m *Mapping) GetString(key, fallback string) string {
	v, ok := m.Get(key)
	if !ok {
		return fallback
	}
	s, ok := AsString(v)
	if !ok {
		return fallback
	}
	return s
}

// GetInt returns the integer stored under key, or fallback when no integer
// coercion applies. See AsInt for the accepted forms.
func (m *Mapping) GetInt(key string, fallback int64) int64 {
	v, ok := m.Get(key)
	if !ok {
		return fallback
	}
	n, ok := AsInt(v)
	if !ok {
		return fallback
	}
	return n
}

// AsMapping unwraps v to a mapping, looking through a present Optional.
func AsMapping(v Value) (*Mapping, bool) {
	switch t := v.(type) {
	case *Mapping:
		return t, true
	case Optional:
		if t.Inner != nil {
			return AsMapping(t.Inner)
		}
	}
	return nil, false
}

// AsString unwraps v to its text form, looking through a present Optional.
func AsString(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return string(t), true
	case Optional:
		if t.Inner != nil {
			return AsString(t.Inner)
		}
	}
	return "", false
}

// AsInt coerces v to an integer: Int directly, a Float with no fractional
// part, a String of decimal digits with an optional leading minus, and the
// inner value of a present Optional.
func AsInt(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int:
		return int64(t), true
	case Float:
		if t == Float(int64(t)) {
			return int64(t), true
		}
	case String:
		n, err := strconv.ParseInt(string(t), 10, 64)
		if err == nil {
			return n, true
		}
	case Optional:
		if t.Inner != nil {
			return AsInt(t.Inner)
		}
	}
	return 0, false
}

// Clone returns a deep copy of v. Scalars are shared by value; mappings and
// sequences are copied entry by entry so the result owns no part of v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case Optional:
		return Optional{Inner: Clone(t.Inner)}
	case Sequence:
		out := make(Sequence, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case *Mapping:
		if t == nil {
			return (*Mapping)(nil)
		}
		out := &Mapping{Entries: make([]Entry, len(t.Entries))}
		for i, e := range t.Entries {
			out.Entries[i] = Entry{Key: e.Key, Value: Clone(e.Value)}
		}
		return out
	default:
		return v
	}
}
