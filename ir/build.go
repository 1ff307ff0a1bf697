package ir

// KeyVal is one field of an object under construction.
type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an object from kvs, in order. On failure the values
// of kvs not yet inserted remain unowned.
func FromKeyVals(kvs []KeyVal) (*Value, error) {
	res := NewObject()
	for _, kv := range kvs {
		if err := res.Insert(kv.Key, kv.Val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromSlice builds an array from vs.
func FromSlice(vs []*Value) (*Value, error) {
	res := NewArray()
	for _, v := range vs {
		if err := res.Push(v); err != nil {
			return nil, err
		}
	}
	return res, nil
}
