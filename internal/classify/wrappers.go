package classify

import (
	"path/filepath"
	"strings"
)

// peelWrappers strips known transparent wrapper commands (sshpass, timeout,
// env, stdbuf, nice, ionice, doas) to find the command actually being run.
// Wrappers nest, so peeling repeats until the head token is not a wrapper.
// sudo is deliberately not peeled: it has its own PTY rule because of the
// password prompt.
func peelWrappers(tokens []string) []string {
	for {
		peeled := peelOne(tokens)
		if len(peeled) == 0 {
			return nil
		}
		if len(peeled) == len(tokens) {
			return peeled
		}
		tokens = peeled
	}
}

func peelOne(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}

	base := filepath.Base(tokens[0])

	switch base {
	case "sshpass":
		// sshpass -p pass cmd... | sshpass -f file cmd...
		if len(tokens) > 3 && (tokens[1] == "-p" || tokens[1] == "-f") {
			return tokens[3:]
		}
		return tokens[1:]

	case "timeout":
		// timeout [opts] duration command...
		j := 1
		for j < len(tokens) && strings.HasPrefix(tokens[j], "-") {
			if tokens[j] == "-s" || tokens[j] == "--signal" {
				j += 2
			} else {
				j++
			}
		}
		// Skip the duration.
		if j < len(tokens) && !strings.HasPrefix(tokens[j], "-") {
			j++
		}
		if j < len(tokens) {
			return tokens[j:]
		}
		return nil

	case "env":
		// env [-i] [-u NAME]... [VAR=val]... command...
		j := 1
		for j < len(tokens) {
			t := tokens[j]
			switch {
			case t == "-i":
				j++
			case t == "-u":
				j += 2
			case strings.HasPrefix(t, "-"):
				j++
			case strings.Contains(t, "="):
				j++
			default:
				return tokens[j:]
			}
		}
		return nil

	case "stdbuf":
		// stdbuf -oL|-eL|-iL command...
		j := 1
		for j < len(tokens) && strings.HasPrefix(tokens[j], "-") {
			j++
		}
		if j < len(tokens) {
			return tokens[j:]
		}
		return nil

	case "nice", "ionice":
		// nice [-n priority] command...
		j := 1
		if j < len(tokens) && tokens[j] == "-n" {
			j += 2
		}
		if j < len(tokens) {
			return tokens[j:]
		}
		return nil

	case "doas":
		// doas [-u user] command...
		j := 1
		if j < len(tokens) && tokens[j] == "-u" {
			j += 2
		}
		if j < len(tokens) {
			return tokens[j:]
		}
		return nil
	}

	return tokens
}
