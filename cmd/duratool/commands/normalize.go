package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/duratypes/duratypes-go/pkg/duration"
)

// Output formats supported by RunNormalize.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Durations maps setting names to durations, as read from a YAML file.
type Durations map[string]duration.Seconds

// LoadDurations reads a YAML mapping of names to duration expressions. A null
// entry is an ErrInvalidValue error.
func LoadDurations(path string) (Durations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	d := make(Durations, len(nodes))
	for name, node := range nodes {
		if err := duration.RejectYAMLNull(&node); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %s: %w", path, name, err)
		}
		var secs duration.Seconds
		if err := node.Decode(&secs); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %s: %w", path, name, err)
		}
		d[name] = secs
	}
	return d, nil
}

// RunNormalize rewrites the durations in a YAML file as integer seconds in
// the requested format. Output goes to the output path, or w when empty.
func RunNormalize(path, format, output string, w io.Writer) error {
	d, err := LoadDurations(path)
	if err != nil {
		return err
	}

	data, err := encodeDurations(d, format)
	if err != nil {
		return err
	}

	if output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = w.Write(data)
	return err
}

func encodeDurations(d Durations, format string) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatCBOR:
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("failed to create cbor encoder: %w", err)
		}
		data, err := em.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cbor: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: yaml, json, cbor)", format)
	}
}
