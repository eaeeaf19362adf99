package common

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Rational)(nil))
}

func (r Rational) MarshalMsgpack() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], uint64(r.n))
	binary.BigEndian.PutUint64(b[8:], uint64(r.Denominator()))
	return b, nil
}

func (r *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("rational msgpack size %d: %w", len(data), ErrInvalidArgument)
	}
	n := int64(binary.BigEndian.Uint64(data[:8]))
	d := int64(binary.BigEndian.Uint64(data[8:]))
	v, err := NewRational(n, d)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %w", hex.EncodeToString(data), err)
}
