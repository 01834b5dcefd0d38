// Package pgc turns an analyzed SQL catalog and its queries into the source
// files of a typed database client.
//
// A host decodes nothing itself: it hands the raw request payload to Handle
// and writes the files of the response, or reports its error.
//
//	resp := pgc.Handle(payload, request.FormatJSON)
//
// Programs embedding the generator call Build with a decoded request.
package pgc

import (
	"encoding/json"

	"github.com/syssam/pgc/compiler/gen"
	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

// Response is the result of a generation request. Exactly one of Files and
// Error is set.
type Response struct {
	Files []gen.File `json:"files,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Build generates the files of a request.
func Build(req *request.Request, opts ...gen.Option) (*Response, error) {
	files, err := gen.Generate(ir.Build(req), opts...)
	if err != nil {
		return nil, err
	}
	return &Response{Files: files}, nil
}

// Handle decodes a request payload, generates its files and returns the
// JSON encoded Response. Failures are reported in the error field of the
// response, never as a partial list of files.
func Handle(payload []byte, format request.Format, opts ...gen.Option) []byte {
	resp, err := handle(payload, format, opts...)
	if err != nil {
		resp = &Response{Error: err.Error()}
	}
	b, err := json.Marshal(resp)
	if err != nil {
		b, _ = json.Marshal(&Response{Error: err.Error()})
	}
	return b
}

func handle(payload []byte, format request.Format, opts ...gen.Option) (*Response, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	req, err := request.Decode(payload, format)
	if err != nil {
		return nil, err
	}
	return Build(req, opts...)
}
