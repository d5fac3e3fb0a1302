package fontid

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRevisionString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontid")
	defer teardown()
	//
	for _, tc := range []struct {
		raw  int32
		text string
	}{
		{0, "0"},
		{0x00010000, "1"},
		{0x00010005, "1.5"},
		{0x0002000a, "2.10"},
		{-0x10000, "-1"},
		{0x0001ffff, "1.-1"},
	} {
		r := FontRevision(tc.raw)
		assert.Equal(t, tc.text, r.String(), "rendering of revision %#08x", tc.raw)
		assert.Equal(t, tc.text, r.GoString(), "GoString of revision %#08x", tc.raw)
	}
}

func TestRevisionComponents(t *testing.T) {
	r := FontRevision(0x00010005)
	assert.Equal(t, int16(1), r.Major())
	assert.Equal(t, int16(5), r.Minor())
	r = FontRevision(-1) // 0xffffffff
	assert.Equal(t, int16(-1), r.Major())
	assert.Equal(t, int16(-1), r.Minor())
	r = FontRevision(int32(-0x7fff0000)) // 0x80010000
	assert.Equal(t, int16(-0x7fff), r.Major())
	assert.Equal(t, int16(0), r.Minor())
}

func TestDecodeRevisionRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	b := make([]byte, 8)
	for i := 0; i < 1000; i++ {
		rnd.Read(b)
		r := DecodeRevision(b)
		assert.Equal(t, int32(binary.BigEndian.Uint32(b[4:8])), r.Raw())
		recomposed := int32(r.Major())<<16 | int32(r.Minor())&0xffff
		if !assert.Equal(t, r.Raw(), recomposed, "major/minor do not recompose for % x", b) {
			break
		}
	}
}

func TestDecodeRevisionTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontid")
	defer teardown()
	//
	for n := 0; n < 8; n++ {
		b := []byte{0, 1, 0, 0, 0, 1, 0, 5}[:n]
		r := DecodeRevision(b)
		assert.Equal(t, FontRevision(0), r, "expected fallback revision for %d bytes", n)
		assert.Equal(t, "0", r.String())
	}
	assert.Equal(t, FontRevision(0), DecodeRevision(nil))
	assert.Equal(t, FontRevision(0x00010005), DecodeRevision([]byte{0, 1, 0, 0, 0, 1, 0, 5}))
}
