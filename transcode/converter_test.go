package transcode

import (
	stderrors "errors"
	"testing"
	"unicode/utf16"

	"github.com/glotkit/ucbridge/errors"
)

func TestNewDefaultsToUTF32Wide(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Wide() != FormUTF32 {
		t.Errorf("Wide() = %s, want utf-32", c.Wide())
	}
}

func TestNewRejectsNonWideForms(t *testing.T) {
	if _, err := New(Config{Wide: FormUTF8}); err == nil {
		t.Error("New must reject FormUTF8 as a wide representation")
	}
}

func TestFromWideUTF16Aliases(t *testing.T) {
	c, err := New(Config{Wide: FormUTF16})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	src := utf16.Encode([]rune("alias"))
	src = append(src, 0)

	buf, err := c.FromWide(UTF16(src))
	if err != nil {
		t.Fatalf("FromWide: %v", err)
	}
	if buf.IsOwned() {
		t.Error("width-equal wide conversion must not allocate")
	}
	if &buf.Units()[0] != &src[0] {
		t.Error("result must alias the source storage")
	}
}

func TestFromWideUTF32Converts(t *testing.T) {
	c, err := New(Config{Wide: FormUTF32})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	buf, err := c.FromWide(UTF32([]rune("convert")))
	if err != nil {
		t.Fatalf("FromWide: %v", err)
	}
	defer buf.Release()

	if !buf.IsOwned() {
		t.Error("UTF-32 wide conversion must produce owned storage")
	}
	if got := ToUTF8(buf); got != "convert" {
		t.Errorf("round trip = %q", got)
	}
}

func TestFromWideFormMismatch(t *testing.T) {
	c, _ := New(Config{Wide: FormUTF16})

	buf, err := c.FromWide(UTF32([]rune("x")))
	if err == nil {
		t.Fatal("FromWide must reject a source form that does not match the configured wide form")
	}
	if !buf.IsNull() {
		t.Error("failed conversion must yield the null buffer")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseConvert, errors.KindUnsupported)) {
		t.Errorf("err = %v, want unsupported", err)
	}
}

func TestStrictRejectsMalformedUTF8(t *testing.T) {
	c, _ := New(Config{Strict: true})

	buf, err := c.From(UTF8("ok\xff"))
	if err == nil {
		t.Fatal("strict converter must reject malformed UTF-8")
	}
	if !buf.IsNull() {
		t.Error("failed conversion must yield the null buffer")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseConvert, errors.KindInvalidUTF8)) {
		t.Errorf("err = %v, want invalid_utf8", err)
	}
}

func TestStrictRejectsUnpairedSurrogates(t *testing.T) {
	c, _ := New(Config{Strict: true})

	for _, units := range [][]uint16{
		{'a', surr1, 'b', 0}, // high surrogate without low
		{'a', surr2, 0},      // lone low surrogate
		{surr1, 0},           // high surrogate then terminator
	} {
		if _, err := c.From(UTF16(units)); err == nil {
			t.Errorf("strict converter accepted unpaired surrogate in %#x", units)
		}
	}
}

func TestStrictAcceptsValidSurrogatePair(t *testing.T) {
	hi, lo := utf16.EncodeRune('😀')
	units := []uint16{uint16(hi), uint16(lo), 0}

	c, _ := New(Config{Strict: true})
	buf, err := c.From(UTF16(units))
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	if got := ToUTF8(buf); got != "😀" {
		t.Errorf("round trip = %q", got)
	}
}

func TestStrictRejectsInvalidCodePoints(t *testing.T) {
	c, _ := New(Config{Strict: true})

	if _, err := c.From(UTF32([]rune{0xd800})); err == nil {
		t.Error("strict converter must reject surrogate code points")
	}
	if _, err := c.From(UTF32([]rune{0x110000})); err == nil {
		t.Error("strict converter must reject values above MaxRune")
	}
}

func TestLenientConverterNeverErrors(t *testing.T) {
	c, _ := New(Config{})

	buf, err := c.From(UTF8("bad\xff\xfe"))
	if err != nil {
		t.Fatalf("lenient converter returned error: %v", err)
	}
	defer buf.Release()
	if buf.IsNull() {
		t.Error("lenient conversion of non-empty input should produce a buffer")
	}
}
