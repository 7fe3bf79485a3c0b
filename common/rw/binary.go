package rw

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Reader decodes little-endian values from a byte buffer. A failed read
// latches into err; callers check Err once after a run of reads instead
// of after every value.
type Reader struct {
	order   binary.ByteOrder
	dataBuf []byte
	buf     bytes.Buffer
	err     error
}

func NewLittleEndianReader(data []byte) *Reader {
	r := &Reader{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	r.buf.Write(data)
	return r
}

// Err returns the first read failure, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the bytes not yet consumed.
func (r *Reader) Remaining() []byte {
	return r.buf.Bytes()
}

func (r *Reader) read(n int) []byte {
	if r.err != nil {
		for i := 0; i < n; i++ {
			r.dataBuf[i] = 0
		}
		return r.dataBuf[:n]
	}
	if _, err := io.ReadFull(&r.buf, r.dataBuf[:n]); err != nil {
		r.err = err
		for i := 0; i < n; i++ {
			r.dataBuf[i] = 0
		}
	}
	return r.dataBuf[:n]
}

func (r *Reader) ReadUInt8() uint8 {
	return r.read(1)[0]
}

func (r *Reader) ReadInt8() int8 {
	return int8(r.ReadUInt8())
}

func (r *Reader) ReadUInt16() uint16 {
	return r.order.Uint16(r.read(2))
}

func (r *Reader) ReadInt16() int16 {
	return int16(r.ReadUInt16())
}

func (r *Reader) ReadUInt32() uint32 {
	return r.order.Uint32(r.read(4))
}

func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUInt32())
}

func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUInt32())
}

func (r *Reader) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = r.ReadFloat32()
	}
}

// Writer encodes little-endian values into a growable buffer.
type Writer struct {
	order   binary.ByteOrder
	dataBuf []byte
	buf     bytes.Buffer
}

func NewLittleEndianWriter() *Writer {
	return &Writer{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func (w *Writer) WriteUInt8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) WriteUInt16(v uint16) {
	w.order.PutUint16(w.dataBuf, v)
	w.buf.Write(w.dataBuf[:2])
}

func (w *Writer) WriteUInt32(v uint32) {
	w.order.PutUint32(w.dataBuf, v)
	w.buf.Write(w.dataBuf[:4])
}

func (w *Writer) WriteInt32(v int32) {
	w.WriteUInt32(uint32(v))
}

func (w *Writer) WriteFloat32(v float32) {
	w.WriteUInt32(math.Float32bits(v))
}

func (w *Writer) WriteFloat32s(value []float32) {
	for _, v := range value {
		w.WriteFloat32(v)
	}
}

func (w *Writer) WriteBytes(p []byte) {
	w.buf.Write(p)
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
