package reference

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// FieldNames is the column order of the tab-separated conformance rows.
var FieldNames = []string{
	"input", "name", "domain", "path", "tag", "digest_algo", "digest_encoded", "err",
}

// Fields is the flattened text view of a parse outcome, one column per
// conformance field. Absent fields are empty; Err is set only for inputs
// that failed to parse.
type Fields struct {
	Input         string
	Name          string
	Domain        string
	Path          string
	Tag           string
	DigestAlgo    string
	DigestEncoded string
	Err           string
}

// Fields flattens r.
func (r Reference) Fields() Fields {
	f := Fields{Input: r.src, Name: r.Name(), Path: r.Path()}
	f.Domain, _ = r.Domain()
	f.Tag, _ = r.Tag()
	if d, ok := r.Digest(); ok {
		f.DigestAlgo = d.Algorithm()
		f.DigestEncoded = d.Encoded()
	}
	return f
}

// ErrorFields builds the row for an input that failed to parse.
func ErrorFields(input string, err error) Fields {
	return Fields{Input: input, Err: ErrorDescription(err)}
}

// ErrorDescription is the stable one-line wording for err, the text the
// conformance corpus keeps in its err column. Parse errors collapse to
// their sentinel message; offsets and kinds stay out of it.
func ErrorDescription(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Unwrap().Error()
	}
	return err.Error()
}

func (f Fields) columns() []string {
	return []string{
		f.Input, f.Name, f.Domain, f.Path, f.Tag, f.DigestAlgo, f.DigestEncoded, f.Err,
	}
}

// Row renders f as one escaped tab-separated line, without a trailing
// newline.
func (f Fields) Row() string {
	return strings.Join(lo.Map(f.columns(), func(col string, _ int) string {
		return EscapeField(col)
	}), "\t")
}

var (
	fieldEscaper   = strings.NewReplacer("\\", "\\\\", "\t", "\\t", "\n", "\\n", "\r", "\\r")
	fieldUnescaper = strings.NewReplacer("\\t", "\t", "\\n", "\n", "\\r", "\r", "\\\\", "\\")
)

// EscapeField escapes the bytes that would corrupt a tab-separated row.
func EscapeField(s string) string { return fieldEscaper.Replace(s) }

// UnescapeField undoes EscapeField.
func UnescapeField(s string) string { return fieldUnescaper.Replace(s) }
