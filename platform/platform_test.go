//go:build !avr

package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cc3000-go/errcode"
	"cc3000-go/hal"
)

func TestSupportedVariants(t *testing.T) {
	for _, v := range []Variant{ATmega8, ATmega168, ATmega328, ATmega328P} {
		assert.True(t, Supported(v), v.String())
		assert.NoError(t, Check(v))
		assert.Equal(t, uint32(16_000_000), CPUFrequency(v))
	}
	err := Check(VariantUnknown)
	assert.True(t, errors.Is(err, errcode.UnsupportedPlatform), "got %v", err)
	assert.False(t, Supported(Variant(42)))
	assert.Equal(t, "unknown", Variant(42).String())
	assert.Zero(t, CPUFrequency(VariantUnknown))
}

func TestHostBuildReportsUnknownVariant(t *testing.T) {
	assert.Equal(t, VariantUnknown, Current())
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"atmega328p":  ATmega328P,
		" ATmega168 ": ATmega168,
		"atmega8":     ATmega8,
		"atmega328":   ATmega328,
	}
	for in, want := range cases {
		got, ok := ParseVariant(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "unknown", "rp2040"} {
		_, ok := ParseVariant(in)
		assert.False(t, ok, in)
	}
}

func TestInterruptLine(t *testing.T) {
	line, err := InterruptLine(ATmega328P, 2)
	require.NoError(t, err)
	assert.Equal(t, INT0, line)

	line, err = InterruptLine(ATmega328P, 3)
	require.NoError(t, err)
	assert.Equal(t, INT1, line)

	for _, pin := range []uint8{0, 1, 4, 5, 7, 10, 255} {
		_, err := InterruptLine(ATmega328P, pin)
		assert.Equal(t, errcode.UnsupportedPin, errcode.Of(err), "pin %d", pin)
	}

	_, err = InterruptLine(VariantUnknown, 2)
	assert.Equal(t, errcode.UnsupportedPlatform, errcode.Of(err))
}

func TestLineRegistry(t *testing.T) {
	t.Cleanup(func() { ClearLine(INT0); ClearLine(INT1) })

	var hits [NumLines]int
	require.NoError(t, RegisterLine(INT0, func() { hits[0]++ }))
	require.NoError(t, RegisterLine(INT1, func() { hits[1]++ }))

	DispatchLine(INT0)
	DispatchLine(INT1)
	DispatchLine(INT1)
	DispatchLine(7) // out of range: ignored
	assert.Equal(t, [NumLines]int{1, 2}, hits)

	ClearLine(INT1)
	DispatchLine(INT1)
	assert.Equal(t, 2, hits[1])

	assert.Equal(t, errcode.UnsupportedPin, errcode.Of(RegisterLine(2, func() {})))
}

func TestFakePinIRQOnFallingEdge(t *testing.T) {
	f := NewHostPinFactory()
	p, ok := f.Pin(2)
	require.True(t, ok)

	fired := 0
	require.NoError(t, p.SetIRQ(hal.EdgeFalling, func() { fired++ }))
	p.Set(true)
	p.Set(false)
	p.Set(false) // no edge
	assert.Equal(t, 1, fired)

	require.NoError(t, p.ClearIRQ())
	p.Set(true)
	p.Set(false)
	assert.Equal(t, 1, fired)
	assert.Equal(t, hal.EdgeNone, p.IRQEdge())
}

func TestHostPinFactoryRange(t *testing.T) {
	f := NewHostPinFactory()
	a, ok := f.ByNumber(7)
	require.True(t, ok)
	b, _ := f.ByNumber(7)
	assert.Same(t, a, b)
	assert.Equal(t, 7, a.Number())

	_, ok = f.ByNumber(20)
	assert.False(t, ok)
	_, ok = f.ByNumber(-1)
	assert.False(t, ok)
}

func TestFakeSPIRecords(t *testing.T) {
	s := &FakeSPI{}
	require.NoError(t, s.Configure(hal.SPIConfig{Frequency: 8_000_000, Mode: 1}))
	r := make([]byte, 2)
	require.NoError(t, s.Tx([]byte{0x01, 0x02}, r))
	assert.Equal(t, []byte{0xFF, 0xFF}, r)
	got, err := s.Transfer(0x03)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), got)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, s.Written())
	assert.Len(t, s.Configs(), 1)
}
