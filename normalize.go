package urlpath

import "strings"

// Normalize resolves "." and ".." segments and collapses repeated slashes
// using text manipulation only. Absolute paths stay absolute, a trailing
// slash is preserved when segments remain, and a relative path that resolves
// to nothing becomes ".". The function is total: it never fails, whatever
// the input.
func Normalize(path string) string {
	leading := strings.HasPrefix(path, "/")
	trailing := strings.HasSuffix(path, "/") && path != "/"

	stack := resolve(strings.Split(path, "/"), leading)

	var b strings.Builder
	if leading {
		b.WriteString("/")
	}
	b.WriteString(strings.Join(stack, "/"))
	if trailing && len(stack) > 0 {
		b.WriteString("/")
	}

	out := b.String()
	if out == "" {
		return "."
	}
	return out
}

// resolve folds raw segments left to right. Empty and "." segments carry no
// meaning and are dropped. ".." pops the previous segment; at the root of an
// absolute path it is dropped, while a relative path keeps it literally
// since there is nothing above the unknown base to remove.
func resolve(parts []string, absolute bool) []string {
	stack := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else if !absolute {
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, part)
		}
	}
	return stack
}
