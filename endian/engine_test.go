package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require := require.New(t)

	require.Equal(binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(binary.BigEndian, GetBigEndianEngine())
	require.False(IsBigEndian(GetLittleEndianEngine()))
	require.True(IsBigEndian(GetBigEndianEngine()))
}

func TestFromFlag(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), FromFlag(true))
	require.Equal(t, GetLittleEndianEngine(), FromFlag(false))
}

func TestEngine_ByteLayout(t *testing.T) {
	const v uint64 = 0x0102030405060708

	le := GetLittleEndianEngine().AppendUint64(nil, v)
	be := GetBigEndianEngine().AppendUint64(nil, v)

	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, be)
	require.Equal(t, v, GetLittleEndianEngine().Uint64(le))
	require.Equal(t, v, GetBigEndianEngine().Uint64(be))
}
