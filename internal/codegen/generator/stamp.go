package generator

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// digestPrefix starts the line recording the BLAKE2b-256 digest of a generated
// file's remaining content.
const digestPrefix = "// formgen:digest "

func digest(body string) string {
	sum := blake2b.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}

// stamp inserts the digest line of src after its first line.
func stamp(src string) string {
	line := digestPrefix + digest(src) + "\n"
	first, rest, ok := strings.Cut(src, "\n")
	if !ok {
		return line + src
	}
	return first + "\n" + line + rest
}

// unstamp splits a stamped file into its content without the digest line and
// the recorded digest. ok is false when the file carries no digest line.
func unstamp(content string) (body, sum string, ok bool) {
	idx := 0
	for {
		i := strings.Index(content[idx:], digestPrefix)
		if i < 0 {
			return "", "", false
		}
		idx += i
		if idx == 0 || content[idx-1] == '\n' {
			break
		}
		idx += len(digestPrefix)
	}
	end := strings.IndexByte(content[idx:], '\n')
	if end < 0 {
		return "", "", false
	}
	end += idx
	return content[:idx] + content[end+1:], content[idx+len(digestPrefix) : end], true
}

// intact reports whether content still matches the digest it was stamped with.
func intact(content string) (sum string, ok bool) {
	body, sum, ok := unstamp(content)
	if !ok || digest(body) != sum {
		return "", false
	}
	return sum, true
}
