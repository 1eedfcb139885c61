package duration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// secondsEncMode encodes Seconds as a CBOR integer.
var secondsEncMode cbor.EncMode

// secondsDecMode decodes any CBOR scalar into a generic value before it is
// handed to Parse. Bignums decode to *big.Int.
var secondsDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	secondsEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create seconds CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		BigIntDec: cbor.BigIntDecodePointer,
	}
	secondsDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create seconds CBOR decoder mode: %v", err))
	}
}

// MarshalJSON encodes s as a JSON number.
func (s Seconds) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(s), 10), nil
}

// UnmarshalJSON accepts a JSON number or string. null is an ErrInvalidValue
// error; arrays, objects and booleans are ErrInvalidType errors.
func (s *Seconds) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return s.assign(v)
}

// MarshalYAML encodes s as a YAML integer.
func (s Seconds) MarshalYAML() (any, error) {
	return int64(s), nil
}

// UnmarshalYAML accepts integer, float (including .inf and .nan) and string
// scalars.
//
// yaml.v3 does not call unmarshalers for null nodes, so a null struct field
// keeps its previous value. Callers that must reject null inspect the node
// tree first (see RejectYAMLNull); a null node passed here directly is an
// ErrInvalidValue error.
func (s *Seconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return newError(KindType, node.Value, "duration must be a scalar, got YAML %s at line %d", yamlKindName(node.Kind), node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		return s.assign(nil)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return s.assign(i)
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return s.assign(u)
		}
		return newError(KindOverflow, node.Value, "duration %s exceeds the int64 seconds range", node.Value)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return newError(KindFormat, node.Value, "invalid numeric duration: %q", node.Value)
		}
		return s.assign(f)
	case "!!str":
		return s.assign(node.Value)
	default:
		return newError(KindType, node.Value, "duration must be string, integer, or float, got YAML %s", node.ShortTag())
	}
}

// MarshalCBOR encodes s as a CBOR integer.
func (s Seconds) MarshalCBOR() ([]byte, error) {
	return secondsEncMode.Marshal(int64(s))
}

// UnmarshalCBOR accepts CBOR integers, floats and text strings.
func (s *Seconds) UnmarshalCBOR(data []byte) error {
	var v any
	if err := secondsDecMode.Unmarshal(data, &v); err != nil {
		return err
	}
	if n, ok := v.(*big.Int); ok {
		if !n.IsInt64() {
			return newError(KindOverflow, v, "duration %s exceeds the int64 seconds range", n.String())
		}
		v = n.Int64()
	}
	return s.assign(v)
}

// RejectYAMLNull returns an ErrInvalidValue error when node, after alias
// resolution, is a YAML null.
func RejectYAMLNull(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return newError(KindValue, nil, "duration cannot be nil (YAML null at line %d)", node.Line)
	}
	return nil
}

func (s *Seconds) assign(v any) error {
	secs, err := Parse(v)
	if err != nil {
		return err
	}
	*s = Seconds(secs)
	return nil
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}

// Compile-time interface satisfaction checks.
var (
	_ json.Marshaler   = Seconds(0)
	_ json.Unmarshaler = (*Seconds)(nil)
	_ yaml.Marshaler   = Seconds(0)
	_ yaml.Unmarshaler = (*Seconds)(nil)
	_ cbor.Marshaler   = Seconds(0)
	_ cbor.Unmarshaler = (*Seconds)(nil)
)
