package transcode

import (
	"unicode/utf8"

	"github.com/glotkit/ucbridge/codeunit"
	"github.com/glotkit/ucbridge/errors"
)

// Config controls a Converter. The zero value selects FormUTF32 wide
// characters and lenient conversion.
type Config struct {
	// Wide is the native wide-character representation: FormUTF16 or
	// FormUTF32. Resolved once here instead of per call site.
	Wide Form
	// Strict rejects malformed input with an error instead of substituting
	// U+FFFD.
	Strict bool
}

// Converter applies a fixed conversion policy. Converters are stateless
// after construction and safe for concurrent use.
type Converter struct {
	cfg Config
}

// New validates cfg and returns a converter. Unsupported wide forms are
// rejected here, at configuration time.
func New(cfg Config) (*Converter, error) {
	switch cfg.Wide {
	case FormNative:
		cfg.Wide = FormUTF32
	case FormUTF16, FormUTF32:
	default:
		return nil, errors.Unsupported(errors.PhaseConvert, "wide form "+cfg.Wide.String())
	}
	return &Converter{cfg: cfg}, nil
}

// Wide returns the configured native wide representation.
func (c *Converter) Wide() Form { return c.cfg.Wide }

// From converts src to a code-unit buffer, honoring the strict policy.
// Under the lenient policy the error is always nil.
func (c *Converter) From(src Source) (codeunit.Buffer, error) {
	if c.cfg.Strict {
		if err := validate(src); err != nil {
			return codeunit.Null(), err
		}
	}
	return From(src), nil
}

// FromWide converts a native wide string. The source form must match the
// configured wide representation. Under FormUTF16 the result aliases the
// source storage; under FormUTF32 code points are converted into owned
// storage.
func (c *Converter) FromWide(src Source) (codeunit.Buffer, error) {
	if src.form != c.cfg.Wide {
		return codeunit.Null(), errors.Unsupported(errors.PhaseConvert,
			"wide source form "+src.form.String()+" with configured "+c.cfg.Wide.String())
	}
	return c.From(src)
}

// validate reports the first malformed element of src.
func validate(src Source) error {
	switch src.form {
	case FormUTF8, FormNative:
		if !utf8.ValidString(src.str) {
			return errors.InvalidUTF8(errors.PhaseConvert, []byte(src.str))
		}
	case FormUTF32:
		for _, r := range src.runes {
			if sanitize(r) != r {
				return errors.InvalidCodePoint(errors.PhaseConvert, r)
			}
		}
	case FormUTF16:
		for i := 0; i < len(src.units); i++ {
			v := src.units[i]
			if v == 0 {
				break
			}
			switch {
			case surr1 <= v && v < surr2:
				if i+1 >= len(src.units) || src.units[i+1] < surr2 || src.units[i+1] >= surr3 {
					return errors.New(errors.PhaseConvert, errors.KindInvalidData).
						WithDetail("unpaired high surrogate 0x%04x at %d", v, i)
				}
				i++
			case surr2 <= v && v < surr3:
				return errors.New(errors.PhaseConvert, errors.KindInvalidData).
					WithDetail("unpaired low surrogate 0x%04x at %d", v, i)
			}
		}
	}
	return nil
}
