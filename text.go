package dict

import (
	"bytes"
	"iter"
)

// Npos is the "no position" sentinel of the string surface: it means
// "until the end" when passed as a count and "not found" when returned
// from a search.
const Npos = -1

// textMut gates a mutating string operation: a null cell promotes to an
// empty string, any variant other than string is rejected.
func (v *Value) textMut() (*textData, error) {
	switch d := v.data.(type) {
	case nil:
		t := &textData{}
		v.data = t
		return t, nil
	case *textData:
		return d, nil
	}
	return nil, errNotA(v, KindString)
}

// textConst gates a read-only string operation: only a string cell
// passes, null included in the rejection.
func (v *Value) textConst() (*textData, error) {
	if d, ok := v.data.(*textData); ok {
		return d, nil
	}
	return nil, errNotA(v, KindString)
}

// textCheck reports the byte length a mutating string operation would see
// without promoting, so argument checks can run before a null cell
// transitions. A failing operation must leave a null cell null.
func (v *Value) textCheck() (int, error) {
	switch d := v.data.(type) {
	case nil:
		return 0, nil
	case *textData:
		return len(d.buf), nil
	}
	return 0, errNotA(v, KindString)
}

// substrRange checks pos against the length of s and resolves the count
// n (Npos means the rest of s).
func (v *Value) substrRange(length, pos, n int) (int, error) {
	if pos < 0 || pos > length {
		return 0, errOutOfRange(v, pos)
	}
	rest := length - pos
	if n == Npos || n > rest {
		n = rest
	}
	return n, nil
}

// GetString returns the stored text. A non-string cell is rejected with
// an AccessError.
func (v *Value) GetString() (string, error) {
	t, err := v.textConst()
	if err != nil {
		return "", err
	}
	return string(t.buf), nil
}

// Bytes returns a copy of the raw byte contents. The cell keeps exclusive
// ownership of its buffer.
func (v *Value) Bytes() ([]byte, error) {
	t, err := v.textConst()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), t.buf...), nil
}

// ByteAt returns the byte at index i.
func (v *Value) ByteAt(i int) (byte, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(t.buf) {
		return 0, errOutOfRange(v, i)
	}
	return t.buf[i], nil
}

// Length returns the number of bytes stored.
func (v *Value) Length() (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	return len(t.buf), nil
}

// Append appends s to the text. A null cell promotes to an empty string
// first.
func (v *Value) Append(s string) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf, s...)
	return nil
}

// AppendBytes appends a raw byte buffer.
func (v *Value) AppendBytes(b []byte) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf, b...)
	return nil
}

// AppendSubstr appends n bytes of s starting at pos. Npos appends the
// rest of s; pos beyond s is out of range.
func (v *Value) AppendSubstr(s string, pos, n int) error {
	if _, err := v.textCheck(); err != nil {
		return err
	}
	n, err := v.substrRange(len(s), pos, n)
	if err != nil {
		return err
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf, s[pos:pos+n]...)
	return nil
}

// AppendChars appends n copies of the byte c.
func (v *Value) AppendChars(n int, c byte) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf, bytes.Repeat([]byte{c}, n)...)
	return nil
}

// PushBackByte appends the single byte c.
func (v *Value) PushBackByte(c byte) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf, c)
	return nil
}

// AssignString replaces the text with s. A null cell promotes first.
func (v *Value) AssignString(s string) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:0], s...)
	return nil
}

// AssignBytes replaces the text with a copy of b.
func (v *Value) AssignBytes(b []byte) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:0], b...)
	return nil
}

// AssignSubstr replaces the text with n bytes of s starting at pos.
func (v *Value) AssignSubstr(s string, pos, n int) error {
	if _, err := v.textCheck(); err != nil {
		return err
	}
	n, err := v.substrRange(len(s), pos, n)
	if err != nil {
		return err
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:0], s[pos:pos+n]...)
	return nil
}

// AssignChars replaces the text with n copies of the byte c.
func (v *Value) AssignChars(n int, c byte) error {
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:0], bytes.Repeat([]byte{c}, n)...)
	return nil
}

// CompareString compares the text against s with the usual sign contract:
// negative when the text sorts first, zero on equality, positive
// otherwise.
func (v *Value) CompareString(s string) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	return bytes.Compare(t.buf, []byte(s)), nil
}

// CompareSubstr compares n bytes of the text starting at pos against s.
func (v *Value) CompareSubstr(pos, n int, s string) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	n, err = v.substrRange(len(t.buf), pos, n)
	if err != nil {
		return 0, err
	}
	return bytes.Compare(t.buf[pos:pos+n], []byte(s)), nil
}

// Find returns the index of the first occurrence of sub at or after pos,
// or Npos.
func (v *Value) Find(sub string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos > len(t.buf) {
		return Npos, nil
	}
	i := bytes.Index(t.buf[pos:], []byte(sub))
	if i == -1 {
		return Npos, nil
	}
	return pos + i, nil
}

// FindByte returns the index of the first occurrence of the byte c at or
// after pos, or Npos.
func (v *Value) FindByte(c byte, pos int) (int, error) {
	return v.Find(string([]byte{c}), pos)
}

// Rfind returns the index of the last occurrence of sub starting at or
// before pos. Npos searches from the end.
func (v *Value) Rfind(sub string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	limit := len(t.buf)
	if pos != Npos && pos+len(sub) < limit {
		limit = pos + len(sub)
	}
	if limit < 0 {
		limit = 0
	}
	i := bytes.LastIndex(t.buf[:limit], []byte(sub))
	if i == -1 {
		return Npos, nil
	}
	return i, nil
}

// RfindByte returns the index of the last occurrence of the byte c
// starting at or before pos, or Npos.
func (v *Value) RfindByte(c byte, pos int) (int, error) {
	return v.Rfind(string([]byte{c}), pos)
}

// FindFirstOf returns the first index at or after pos whose byte appears
// in set, or Npos.
func (v *Value) FindFirstOf(set string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(t.buf); i++ {
		if bytes.IndexByte([]byte(set), t.buf[i]) != -1 {
			return i, nil
		}
	}
	return Npos, nil
}

// FindFirstNotOf returns the first index at or after pos whose byte does
// not appear in set, or Npos.
func (v *Value) FindFirstNotOf(set string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(t.buf); i++ {
		if bytes.IndexByte([]byte(set), t.buf[i]) == -1 {
			return i, nil
		}
	}
	return Npos, nil
}

// FindLastOf returns the last index at or before pos whose byte appears
// in set. Npos searches from the end.
func (v *Value) FindLastOf(set string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	start := len(t.buf) - 1
	if pos != Npos && pos < start {
		start = pos
	}
	for i := start; i >= 0; i-- {
		if bytes.IndexByte([]byte(set), t.buf[i]) != -1 {
			return i, nil
		}
	}
	return Npos, nil
}

// FindLastNotOf returns the last index at or before pos whose byte does
// not appear in set. Npos searches from the end.
func (v *Value) FindLastNotOf(set string, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	start := len(t.buf) - 1
	if pos != Npos && pos < start {
		start = pos
	}
	for i := start; i >= 0; i-- {
		if bytes.IndexByte([]byte(set), t.buf[i]) == -1 {
			return i, nil
		}
	}
	return Npos, nil
}

// Substr extracts n bytes starting at pos into a new string. Npos takes
// the rest of the text.
func (v *Value) Substr(pos, n int) (string, error) {
	t, err := v.textConst()
	if err != nil {
		return "", err
	}
	n, err = v.substrRange(len(t.buf), pos, n)
	if err != nil {
		return "", err
	}
	return string(t.buf[pos : pos+n]), nil
}

// CopySubstr copies bytes starting at pos into dst and returns the number
// of bytes copied, at most len(dst).
func (v *Value) CopySubstr(dst []byte, pos int) (int, error) {
	t, err := v.textConst()
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos > len(t.buf) {
		return 0, errOutOfRange(v, pos)
	}
	return copy(dst, t.buf[pos:]), nil
}

// InsertString inserts s at byte index pos.
func (v *Value) InsertString(pos int, s string) error {
	length, err := v.textCheck()
	if err != nil {
		return err
	}
	if pos < 0 || pos > length {
		return errOutOfRange(v, pos)
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:pos], append([]byte(s), t.buf[pos:]...)...)
	return nil
}

// InsertChars inserts n copies of the byte c at byte index pos.
func (v *Value) InsertChars(pos, n int, c byte) error {
	return v.InsertString(pos, string(bytes.Repeat([]byte{c}, n)))
}

// EraseString removes n bytes starting at pos. Npos erases to the end.
func (v *Value) EraseString(pos, n int) error {
	length, err := v.textCheck()
	if err != nil {
		return err
	}
	n, err = v.substrRange(length, pos, n)
	if err != nil {
		return err
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:pos], t.buf[pos+n:]...)
	return nil
}

// ReplaceString replaces n bytes starting at pos with s. Npos replaces to
// the end.
func (v *Value) ReplaceString(pos, n int, s string) error {
	length, err := v.textCheck()
	if err != nil {
		return err
	}
	n, err = v.substrRange(length, pos, n)
	if err != nil {
		return err
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	t.buf = append(t.buf[:pos], append([]byte(s), t.buf[pos+n:]...)...)
	return nil
}

// ReplaceChars replaces n bytes starting at pos with count copies of the
// byte c.
func (v *Value) ReplaceChars(pos, n, count int, c byte) error {
	return v.ReplaceString(pos, n, string(bytes.Repeat([]byte{c}, count)))
}

// ResizeStringWith grows or shrinks the text to n bytes, padding with the
// fill byte.
func (v *Value) ResizeStringWith(n int, fill byte) error {
	if _, err := v.textCheck(); err != nil {
		return err
	}
	if n < 0 {
		return errOutOfRange(v, n)
	}
	t, err := v.textMut()
	if err != nil {
		return err
	}
	for len(t.buf) < n {
		t.buf = append(t.buf, fill)
	}
	t.buf = t.buf[:n]
	return nil
}

// ByteSeq iterates the text's bytes front to back.
func (v *Value) ByteSeq() (iter.Seq[byte], error) {
	t, err := v.textConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(byte) bool) {
		for _, c := range t.buf {
			if !yield(c) {
				return
			}
		}
	}, nil
}

// ByteSeqBackward iterates the text's bytes back to front.
func (v *Value) ByteSeqBackward() (iter.Seq[byte], error) {
	t, err := v.textConst()
	if err != nil {
		return nil, err
	}
	return func(yield func(byte) bool) {
		for i := len(t.buf) - 1; i >= 0; i-- {
			if !yield(t.buf[i]) {
				return
			}
		}
	}, nil
}
