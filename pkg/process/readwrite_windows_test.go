//go:build windows

package process

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	p := openSelf(t)
	base := allocRW(t, 64)

	if v, err := WriteAndRead(p, base, int32(0x12345678)); assert.NoError(t, err) {
		assert.Equal(t, int32(0x12345678), v)
	}
	if v, err := WriteAndRead(p, base+4, uint32(0x89ABCDEF)); assert.NoError(t, err) {
		assert.Equal(t, uint32(0x89ABCDEF), v)
	}
	if v, err := WriteAndRead(p, base+8, int64(0x123456789ABCDEF0)); assert.NoError(t, err) {
		assert.Equal(t, int64(0x123456789ABCDEF0), v)
	}
	if v, err := WriteAndRead(p, base+16, uint64(0x0FEDCBA987654321)); assert.NoError(t, err) {
		assert.Equal(t, uint64(0x0FEDCBA987654321), v)
	}
	if v, err := WriteAndRead(p, base+24, float32(12345.125)); assert.NoError(t, err) {
		assert.Equal(t, float32(12345.125), v)
	}
	if v, err := WriteAndRead(p, base+32, float64(98765.875)); assert.NoError(t, err) {
		assert.Equal(t, float64(98765.875), v)
	}
	if v, err := WriteAndRead(p, base+40, uint8(0xAB)); assert.NoError(t, err) {
		assert.Equal(t, uint8(0xAB), v)
	}
}

func TestReadPointer(t *testing.T) {
	p := openSelf(t)

	target := new(int64)
	holder := uintptr(unsafe.Pointer(target))

	got, err := p.ReadPointer(uintptr(unsafe.Pointer(&holder)))
	require.NoError(t, err)
	assert.Equal(t, holder, got)
}

func TestReadUnboundProcess(t *testing.T) {
	p := New()
	buf := allocRW(t, 8)

	_, err := p.ReadPointer(buf)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, Write(p, buf, int32(1)), ErrNotOpen)
}

func TestReadUnmappedAddress(t *testing.T) {
	p := openSelf(t)
	_, err := Read[uint32](p, 0)
	assert.Error(t, err)
}
