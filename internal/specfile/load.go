package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"specc/internal/diag"
	"specc/internal/model"
)

// Load reads and converts the spec file at path. The spec is nil when the
// file could not be read, decoded or converted; the reasons are in the
// returned diagnostics.
func Load(path string) (model.Spec, []diag.Diagnostic) {
	data, err := os.ReadFile(path)
	if err != nil {
		d := diag.NewError(diag.IOLoadFileError, diag.Origin{File: path}, fmt.Sprintf("failed to read spec file: %v", err))
		return nil, []diag.Diagnostic{d}
	}
	return Decode(path, data)
}

// Decode converts spec file contents. name is used as the file in every
// diagnostic origin.
func Decode(name string, data []byte) (model.Spec, []diag.Diagnostic) {
	var f File
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, []diag.Diagnostic{decodeError(name, err)}
	}

	sink := &diag.SliceReporter{Items: make([]diag.Diagnostic, 0)}
	// ключи из массивов таблиц повторяются, по одному на элемент
	keys := diag.NewDedupReporter(sink)
	for _, key := range meta.Undecoded() {
		diag.ReportWarning(keys, diag.IOUnknownKey, diag.Origin{File: name},
			fmt.Sprintf("unknown key %q is ignored", key.String())).Emit()
	}

	s := newConverter(name, sink).convert(&f)
	if diag.HasErrors(sink.Items) {
		return nil, sink.Items
	}
	return s, sink.Items
}

func decodeError(name string, err error) diag.Diagnostic {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return diag.NewError(diag.IODecodeError, diag.Origin{File: name},
			fmt.Sprintf("line %d: %s", perr.Position.Line, perr.Message))
	}
	return diag.NewError(diag.IODecodeError, diag.Origin{File: name}, err.Error())
}

// Encode renders f in the layout Decode reads.
func Encode(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode spec file: %w", err)
	}
	return buf.Bytes(), nil
}
