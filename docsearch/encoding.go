package docsearch

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/traditionalchinese"
)

// fallbackEncodings are tried in order after UTF-8. Big5 covers the cp950
// superset; ISO 8859-1 goes last because it accepts any byte string and
// would shadow the CJK fallbacks.
var fallbackEncodings = []encoding.Encoding{
	traditionalchinese.Big5,
	charmap.ISO8859_1,
}

// DecodeText converts uploaded bytes to a UTF-8 string, trying UTF-8 and
// then the fallback encodings. It never fails: if nothing decodes cleanly,
// invalid sequences are replaced with U+FFFD.
func DecodeText(content []byte) string {
	if utf8.Valid(content) {
		return string(content)
	}

	for _, enc := range fallbackEncodings {
		if decoded, ok := decodeStrict(enc, content); ok {
			return decoded
		}
	}

	return strings.ToValidUTF8(string(content), string(utf8.RuneError))
}

// decodeStrict decodes content with enc, rejecting the result if any input
// byte could not be mapped. The x/text decoders substitute U+FFFD instead of
// erroring, so substitution is what signals a failed mapping here.
func decodeStrict(enc encoding.Encoding, content []byte) (string, bool) {
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}
