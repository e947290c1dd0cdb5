package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// readCSV reads a CSV file converting it to UTF-8. The delimiter (',', ';' or
// tab) is taken from the first line.
func readCSV(r io.Reader, headerRow int) ([]map[string]string, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	peek, _ := br.Peek(sniffSize)

	dec := transform.NewReader(br, detectEncoding(peek).NewDecoder())

	cr := csv.NewReader(dec)
	cr.Comma = detectDelimiter(peek)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range rec {
			rec[i] = normalizeCell(rec[i])
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow), nil
}

// detectEncoding returns the decoder for the sniffed bytes. Valid UTF-8 wins;
// otherwise chardet decides, defaulting to Windows-1252.
func detectEncoding(peek []byte) encoding.Encoding {
	if bytes.HasPrefix(peek, []byte("\xEF\xBB\xBF")) {
		return unicode.UTF8BOM
	}
	if validUTF8Prefix(peek) {
		return unicode.UTF8
	}

	cs := ""
	if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
		cs = strings.ToLower(det.Charset)
	}
	switch cs {
	case "utf-8":
		return unicode.UTF8
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "iso-8859-15":
		return charmap.ISO8859_15
	default:
		return charmap.Windows1252
	}
}

// validUTF8Prefix tolerates a multi-byte sequence cut by the sniff window.
func validUTF8Prefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}
	if len(b) < sniffSize {
		return false
	}
	for i := 1; i < utf8.UTFMax && i < len(b); i++ {
		if utf8.Valid(b[:len(b)-i]) {
			return true
		}
	}
	return false
}

func detectDelimiter(peek []byte) rune {
	line := peek
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		line = peek[:i]
	}
	best, bestCount := ',', bytes.Count(line, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
