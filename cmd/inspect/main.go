package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/glotkit/ucbridge/transcode"
)

func main() {
	var (
		text        = flag.String("text", "", "Text to inspect (default: read stdin)")
		from        = flag.String("from", "utf-8", "Input byte encoding: utf-8, utf-16, utf-16le, utf-16be, latin-1")
		to          = flag.String("to", "", "Re-encode to this encoding and write raw bytes instead of inspecting")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*text, *from, *to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseEncoding(name string) (transcode.ByteEncoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return transcode.BytesUTF8, nil
	case "utf-16", "utf16":
		return transcode.BytesUTF16, nil
	case "utf-16le", "utf16le":
		return transcode.BytesUTF16LE, nil
	case "utf-16be", "utf16be":
		return transcode.BytesUTF16BE, nil
	case "latin-1", "latin1", "iso-8859-1":
		return transcode.BytesLatin1, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", name)
	}
}

func run(text, fromName, toName string) error {
	from, err := parseEncoding(fromName)
	if err != nil {
		return err
	}

	var data []byte
	if text != "" {
		data = []byte(text)
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	s, err := transcode.Decode(data, from)
	if err != nil {
		return err
	}

	if toName != "" {
		to, err := parseEncoding(toName)
		if err != nil {
			return err
		}
		out, err := transcode.Encode(s, to)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	inspect(os.Stdout, s)
	return nil
}

func inspect(w io.Writer, s string) {
	buf := transcode.FromUTF8(s)
	defer buf.Release()

	units := buf.Units()[:buf.Len()]
	points := transcode.ToUTF32(buf)

	fmt.Fprintf(w, "Text:    %s\n", s)
	fmt.Fprintf(w, "UTF-8:   % x\n", []byte(s))
	fmt.Fprintf(w, "UTF-16:  %s\n", formatUnits(units))
	fmt.Fprintf(w, "UTF-32:  %s\n", formatRunes(points))
	fmt.Fprintf(w, "Sizes:   %d bytes, %d code units, %d code points\n",
		len(s), len(units), len(points))
	if repaired := transcode.ToUTF8(buf); repaired != s {
		fmt.Fprintf(w, "Repaired: %s\n", repaired)
	}
}

func formatUnits(units []uint16) string {
	var b strings.Builder
	for i, u := range units {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04x", u)
	}
	return b.String()
}

func formatRunes(rs []rune) string {
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	return b.String()
}
