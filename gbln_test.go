package gbln

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd(t *testing.T) {
	const in = `{"a":5i8,"list":[1,2,3],"name":"x"}`
	v, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, 3, v.NumFields())

	out, err := ToString(v)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	pretty, err := ToStringPretty(v)
	require.NoError(t, err)
	assert.Equal(t, "{\n  a: 5i8,\n  list: [\n    1,\n    2,\n    3\n  ],\n  name: \"x\"\n}\n", pretty)

	back, err := Parse(pretty)
	require.NoError(t, err)
	assert.True(t, ir.Equal(v, back))
}

func TestInvalidUTF8RoundTrip(t *testing.T) {
	obj := ir.NewObject()
	require.NoError(t, obj.Insert("s", ir.FromString("a\xffb")))
	assert.Error(t, obj.Insert("\xfe", ir.FromI64(2)))

	out, err := ToString(obj)
	require.NoError(t, err)
	back, err := Parse(out)
	require.NoError(t, err)
	assert.True(t, ir.Equal(obj, back), out)
}

func TestRangeAndKeys(t *testing.T) {
	_, err := Parse(`200i8`)
	assert.ErrorIs(t, err, diag.IntOutOfRange)

	v, err := Parse(`127i8`)
	require.NoError(t, err)
	x, ok := v.AsI8()
	assert.True(t, ok)
	assert.EqualValues(t, 127, x)

	v, err = Parse(`{"a":1,"a":2}`)
	assert.ErrorIs(t, err, diag.DuplicateKey)
	assert.Nil(t, v)

	_, err = ir.FromBoundedString("0123456789", 5)
	assert.ErrorIs(t, err, diag.StringTooLong)
}

func TestSerializeNil(t *testing.T) {
	_, err := ToString(nil)
	assert.ErrorIs(t, err, diag.NullArgument)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	v, err := Parse(`{k:[1u8,2u8]}`)
	require.NoError(t, err)

	out, err := WriteIO(v, filepath.Join(dir, "data"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.io.gbln.xz"), out)
	head, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, head[:6])

	back, err := ReadIO(out)
	require.NoError(t, err)
	assert.True(t, ir.Equal(v, back))

	src := config.Source()
	out, err = WriteIO(v, out, &src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.gbln"), out)
	text, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{\n  k: [\n    1u8,\n    2u8\n  ]\n}\n", string(text))
}

func TestSession(t *testing.T) {
	s := NewSession()
	_, ok := s.LastErrorMessage()
	assert.False(t, ok)

	_, err := s.Parse(`[1,]`)
	require.Error(t, err)
	msg, ok := s.LastErrorMessage()
	assert.True(t, ok)
	assert.Equal(t, "1:3: invalid syntax: trailing comma", msg)
	sug, ok := s.LastErrorSuggestion()
	assert.True(t, ok)
	assert.Equal(t, "remove the trailing comma", sug)

	// a success clears the pending failure
	_, err = s.Parse(`[1]`)
	require.NoError(t, err)
	_, ok = s.LastErrorMessage()
	assert.False(t, ok)

	_, err = s.ReadIO(filepath.Join(t.TempDir(), "missing.gbln"))
	require.Error(t, err)
	d := s.TakeError()
	require.NotNil(t, d)
	assert.Equal(t, diag.IoFailure, d.Kind)
	assert.Nil(t, s.LastError())

	_, err = s.NewConfig(true, true, 10, 2, true)
	assert.ErrorIs(t, err, diag.InvalidSyntax)
	assert.True(t, s.LastError() != nil)
	_, err = s.ToString(ir.Null())
	require.NoError(t, err)
	assert.Nil(t, s.LastError())
}

func TestSessionRejectedChild(t *testing.T) {
	s := NewSession()
	obj := ir.NewObject()
	require.NoError(t, s.Insert(obj, "a", ir.FromI64(1)))

	child := ir.FromI64(2)
	err := s.Insert(obj, "a", child)
	var rej *ir.RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Same(t, child, rej.Child)
	assert.Nil(t, child.Parent())
	assert.Equal(t, diag.DuplicateKey, s.LastError().Kind)

	arr := ir.NewArray()
	require.NoError(t, s.Push(arr, child))
	assert.Nil(t, s.LastError())

	assert.ErrorIs(t, s.Push(nil, ir.Null()), diag.NullArgument)
	assert.ErrorIs(t, s.Push(obj, ir.Null()), diag.TypeMismatch)
	_, ok := s.LastErrorMessage()
	assert.True(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := NewSession()
			in := `[1]`
			if i%2 == 0 {
				in = `[1,]`
			}
			_, err := s.Parse(in)
			_, pending := s.LastErrorMessage()
			assert.Equal(t, err != nil, pending)
		}()
	}
	wg.Wait()
}
