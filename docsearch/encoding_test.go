package docsearch

import "golang.org/x/text/encoding/traditionalchinese"

// big5Encode builds Big5 test fixtures from UTF-8 source text
func big5Encode(s string) ([]byte, error) {
	return traditionalchinese.Big5.NewEncoder().Bytes([]byte(s))
}
