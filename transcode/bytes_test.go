package transcode

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/glotkit/ucbridge/errors"
)

func TestEncodeDecodeUTF16LE(t *testing.T) {
	data, err := Encode("hi", BytesUTF16LE)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x68, 0x00, 0x69, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode = %x, want %x", data, want)
	}

	s, err := Decode(data, BytesUTF16LE)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "hi" {
		t.Errorf("Decode = %q, want %q", s, "hi")
	}
}

func TestEncodeDecodeUTF16BE(t *testing.T) {
	data, err := Encode("hi", BytesUTF16BE)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x00, 0x68, 0x00, 0x69}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode = %x, want %x", data, want)
	}

	s, err := Decode(data, BytesUTF16BE)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "hi" {
		t.Errorf("Decode = %q, want %q", s, "hi")
	}
}

func TestDecodeUTF16HonorsBOM(t *testing.T) {
	le := []byte{0xff, 0xfe, 0x68, 0x00, 0x69, 0x00}
	be := []byte{0xfe, 0xff, 0x00, 0x68, 0x00, 0x69}

	for _, data := range [][]byte{le, be} {
		s, err := Decode(data, BytesUTF16)
		if err != nil {
			t.Fatalf("Decode(%x): %v", data, err)
		}
		if s != "hi" {
			t.Errorf("Decode(%x) = %q, want %q", data, s, "hi")
		}
	}
}

func TestEncodeDecodeLatin1(t *testing.T) {
	data, err := Encode("café", BytesLatin1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{'c', 'a', 'f', 0xe9}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode = %x, want %x", data, want)
	}

	s, err := Decode(data, BytesLatin1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s != "café" {
		t.Errorf("Decode = %q, want %q", s, "café")
	}
}

func TestEncodeLatin1Unmappable(t *testing.T) {
	if _, err := Encode("日本語", BytesLatin1); err == nil {
		t.Error("Encode must reject runes Latin-1 cannot represent")
	}
}

func TestDecodeUTF8Invalid(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xfe, 0xfd}, BytesUTF8)
	if err == nil {
		t.Fatal("Decode must reject malformed UTF-8")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindInvalidUTF8)) {
		t.Errorf("err = %v, want invalid_utf8", err)
	}
}

func TestEncodeDecodeUTF8Passthrough(t *testing.T) {
	s, err := Decode([]byte("plain"), BytesUTF8)
	if err != nil || s != "plain" {
		t.Fatalf("Decode = %q, %v", s, err)
	}
	data, err := Encode("plain", BytesUTF8)
	if err != nil || string(data) != "plain" {
		t.Fatalf("Encode = %q, %v", data, err)
	}
}
