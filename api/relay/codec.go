package relay

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype of the relay frames.
const CodecName = "cbor"

func init() {
	encoding.RegisterCodec(NewCodec())
}

// lenient is implemented by frames that prefer being flagged over failing
// the whole stream when their payload does not decode.
type lenient interface {
	markMalformed()
}

// Codec encodes frames as deterministic CBOR.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() *Codec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("relay: CBOR encoder initialization failed: " + err.Error())
	}
	dec, err := cbor.DecOptions{MaxArrayElements: 4096, MaxNestedLevels: 16}.DecMode()
	if err != nil {
		panic("relay: CBOR decoder initialization failed: " + err.Error())
	}
	return &Codec{enc: enc, dec: dec}
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := c.enc.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	return data, nil
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	err := c.dec.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if frame, ok := v.(lenient); ok {
		frame.markMalformed()
		return nil
	}
	return fmt.Errorf("failed to unmarshal %T: %w", v, err)
}

func (c *Codec) Name() string {
	return CodecName
}
