package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a request payload.
type Format string

// Supported payload formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists the supported payload formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMsgpack}
}

// ParseFormat parses a format name. File extensions ("yml", "mp") are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp", "mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("request: unknown payload format %q", s)
	}
}

// Decode decodes a request payload. Any failure is reported as a
// *DecodeError.
func Decode(payload []byte, format Format) (*Request, error) {
	var (
		req Request
		err error
	)
	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(payload))
		err = dec.Decode(&req)
	case FormatYAML:
		err = yaml.Unmarshal(payload, &req)
	case FormatMsgpack:
		err = msgpack.Unmarshal(payload, &req)
	default:
		err = fmt.Errorf("unknown payload format %q", format)
	}
	if err != nil {
		return nil, &DecodeError{Format: format, Cause: err}
	}
	return &req, nil
}

// Encode encodes a request. It is the inverse of Decode and is used by hosts
// and tests to produce payloads.
func Encode(req *Request, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.Marshal(req)
	case FormatYAML:
		return yaml.Marshal(req)
	case FormatMsgpack:
		return msgpack.Marshal(req)
	default:
		return nil, fmt.Errorf("request: unknown payload format %q", format)
	}
}
