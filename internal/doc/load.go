package doc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

// Load error codes.
const (
	ErrCodeNotFound    = "E001" // document file missing or unreadable
	ErrCodeFormat      = "E002" // unsupported file extension
	ErrCodeParse       = "E003" // YAML or CUE syntax, unknown keys
	ErrCodeInvalid     = "E004" // document-level validation
	ErrCodeNotConcrete = "E005" // CUE value left incomplete
)

// LoadError is returned when a document cannot be read or decoded.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a document from path. Files ending in .yaml or .yml are
// decoded as YAML, files ending in .cue as CUE.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading document: %v", err)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cue":
		return ParseCUE(path, data)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Message: fmt.Sprintf("unsupported document format %q (want .yaml, .yml or .cue)", filepath.Ext(path))}
	}
}

// ParseYAML decodes a YAML document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Document, error) {
	var d Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Code: ErrCodeParse, Message: "document is empty"}
		}
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	return finish(&d)
}

// ParseCUE compiles a CUE document. The value must be concrete; its
// exported fields are then decoded with the same unknown-key check YAML
// documents get. filename is used only for error positions.
func ParseCUE(filename string, data []byte) (*Document, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParse, "compiling CUE", err)
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeNotConcrete, "validating CUE", err)
	}

	raw, err := value.MarshalJSON()
	if err != nil {
		return nil, cueLoadError(ErrCodeNotConcrete, "exporting CUE", err)
	}

	var d Document
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&d); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("decoding CUE document: %v", err)}
	}
	return finish(&d)
}

func finish(d *Document) (*Document, error) {
	d.normalize()
	if err := d.validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}
	return d, nil
}

// cueLoadError converts a CUE error, keeping the position of the first
// reported problem.
func cueLoadError(code, context string, err error) *LoadError {
	loadErr := &LoadError{Code: code, Message: fmt.Sprintf("%s: %v", context, err)}
	if list := cueerrors.Errors(err); len(list) > 0 {
		loadErr.Pos = list[0].Position()
	}
	return loadErr
}
