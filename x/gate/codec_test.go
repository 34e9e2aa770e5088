package gate

import (
	"bytes"
	"io"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEncoding(t *testing.T) {
	cases := map[string]struct {
		Msg  proto.Message
		Want []byte
	}{
		"nonce": {
			Msg:  &NonceState{Value: 1},
			Want: []byte{0x08, 0x01},
		},
		"zero nonce": {
			Msg:  &NonceState{},
			Want: []byte{},
		},
		"configuration": {
			Msg:  &Configuration{DirectoryTimeoutMs: 5000, MaxSignatures: 3},
			Want: []byte{0x08, 0x88, 0x27, 0x10, 0x03},
		},
		"event": {
			Msg:  &EventRecord{Kind: "SetCode", Nonce: 2, Target: []byte{0xaa}, Code: []byte{0x60, 0x00}},
			Want: []byte{0x0a, 0x07, 'S', 'e', 't', 'C', 'o', 'd', 'e', 0x10, 0x02, 0x1a, 0x01, 0xaa, 0x2a, 0x02, 0x60, 0x00},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			m, ok := tc.Msg.(interface {
				Marshal() ([]byte, error)
				Size() int
			})
			require.True(t, ok)
			raw, err := m.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tc.Want, raw)
			assert.Equal(t, len(tc.Want), m.Size())

			// The table driven proto encoder must reach the same bytes
			// through XXX_Size and XXX_Marshal.
			viaProto, err := proto.Marshal(tc.Msg)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.Want, viaProto), "proto.Marshal gave %x", viaProto)
		})
	}
}

func TestRecordDecoding(t *testing.T) {
	ev := EventRecord{
		Kind:    "SetStorage",
		Nonce:   1 << 40,
		Target:  bytes.Repeat([]byte{0x01}, 20),
		Balance: bytes.Repeat([]byte{0x02}, 32),
		Key:     bytes.Repeat([]byte{0x03}, 32),
		Value:   bytes.Repeat([]byte{0x04}, 32),
	}
	raw, err := ev.Marshal()
	require.NoError(t, err)

	var got EventRecord
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, ev, got)

	var viaProto EventRecord
	require.NoError(t, proto.Unmarshal(raw, &viaProto))
	assert.Equal(t, ev, viaProto)

	conf := Configuration{DirectoryTimeoutMs: 1 << 33, MaxSignatures: 1 << 20}
	raw, err = conf.Marshal()
	require.NoError(t, err)
	var gotConf Configuration
	require.NoError(t, gotConf.Unmarshal(raw))
	assert.Equal(t, conf, gotConf)
}

func TestRecordDecodingSkipsUnknownFields(t *testing.T) {
	// value = 7 followed by field 15 as varint and field 16 as bytes.
	raw := []byte{0x08, 0x07, 0x78, 0x2a, 0x82, 0x01, 0x02, 0xde, 0xad}
	var n NonceState
	require.NoError(t, n.Unmarshal(raw))
	assert.Equal(t, uint64(7), n.Value)
}

func TestRecordDecodingMalformed(t *testing.T) {
	cases := map[string]struct {
		Raw     []byte
		WantErr error
	}{
		"truncated varint": {
			Raw:     []byte{0x10, 0xff},
			WantErr: io.ErrUnexpectedEOF,
		},
		"truncated bytes": {
			Raw:     []byte{0x1a, 0x05, 0x01},
			WantErr: io.ErrUnexpectedEOF,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var ev EventRecord
			assert.Equal(t, tc.WantErr, ev.Unmarshal(tc.Raw))
		})
	}

	var ev EventRecord
	assert.Error(t, ev.Unmarshal([]byte{0x08, 0x01}), "kind sent as a varint")
}
