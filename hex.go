package quorum

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

func marshalHex(bytes []byte) ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(bytes))
	return json.Marshal(s)
}
