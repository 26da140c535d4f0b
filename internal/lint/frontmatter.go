package lint

import "bytes"

var fence = []byte("---\n")

// StripFrontMatter splits a leading YAML front matter block, fences
// included, from the Markdown that follows. Without a closed block the
// prefix is nil and content is source.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	rest, ok := bytes.CutPrefix(source, fence)
	if !ok {
		return nil, source
	}
	if bytes.HasPrefix(rest, fence) {
		n := 2 * len(fence)
		return source[:n], source[n:]
	}
	_, after, found := bytes.Cut(rest, []byte("\n---\n"))
	if !found {
		return nil, source
	}
	n := len(source) - len(after)
	return source[:n], after
}
