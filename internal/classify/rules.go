package classify

import "strings"

// sudoWantsPTY reports whether sudo needs a PTY for its password prompt.
func sudoWantsPTY(cmdLower string, tokens []string) bool {
	if cmdLower != "sudo" {
		return false
	}

	// No PTY when sudo is explicitly non-interactive or reads the password
	// from somewhere other than the terminal.
	for _, t := range tokens {
		switch t {
		case "-n", "--non-interactive", "-S", "--stdin", "-A", "--askpass":
			return false
		}
	}
	return true
}

// isInteractiveShell reports whether the command starts an interactive shell.
func isInteractiveShell(cmdLower string, tokens []string) bool {
	switch cmdLower {
	case "bash", "zsh", "sh", "fish", "dash", "ksh":
	default:
		return false
	}

	hasCommand := false
	hasInteractive := false
	for _, t := range tokens {
		if t == "-c" {
			hasCommand = true
		}
		if t == "-i" || t == "--interactive" {
			hasInteractive = true
		}
	}

	// Interactive when no -c script, or when -i is explicit.
	return !hasCommand || hasInteractive
}

// looksLikeREPL reports whether an interpreter invocation starts a REPL.
func looksLikeREPL(cmdLower string, tokens []string) bool {
	switch cmdLower {
	case "python", "python3", "ipython", "bpython", "node", "irb", "pry":
	default:
		return false
	}

	// -i/--interactive forces a REPL regardless of script or inline code.
	for _, t := range tokens {
		if t == "-i" || t == "--interactive" {
			return true
		}
	}

	hasScript := false
	for _, t := range tokens[1:] {
		if !strings.HasPrefix(t, "-") {
			hasScript = true
			break
		}
	}

	hasInline := false
	for _, t := range tokens {
		switch t {
		case "-c", // python
			"-e", "--eval", "-p", "--print": // node
			hasInline = true
		}
	}

	return !hasScript && !hasInline
}

// wantsDebuggerPTY reports whether the command launches an interactive
// debugger.
func wantsDebuggerPTY(cmdLower string, tokens []string) bool {
	if cmdLower == "python" || cmdLower == "python3" {
		for i, t := range tokens {
			if t == "-m" && i+1 < len(tokens) {
				mod := tokens[i+1]
				if mod == "pdb" || mod == "ipdb" {
					return true
				}
			}
		}
	}

	if cmdLower == "node" {
		for _, t := range tokens {
			if t == "inspect" || t == "--inspect" || t == "--inspect-brk" {
				return true
			}
		}
	}

	return false
}

// containerWantsPTY reports whether a container or orchestrator run/exec
// command requests an interactive terminal. Only the options between the
// subcommand and the first positional argument are examined; flags inside
// the remote command never affect the decision.
func containerWantsPTY(cmdLower string, tokens []string) bool {
	isDockerCompose := cmdLower == "docker" && len(tokens) > 1 && tokens[1] == "compose"

	switch {
	case cmdLower == "docker", cmdLower == "podman", cmdLower == "docker-compose", isDockerCompose:
		subIdx := -1
		for i, t := range tokens {
			if t == "run" || t == "exec" {
				subIdx = i
				break
			}
		}
		if subIdx < 0 {
			return false
		}

		hasStdin := false
		hasTTY := false
		for _, t := range tokens[subIdx+1:] {
			if t == "--" {
				break
			}
			if !strings.HasPrefix(t, "-") {
				// First non-option is the image or container name; the rest
				// belongs to the in-container command.
				break
			}
			if t == "-it" || t == "-ti" {
				return true
			}
			if t == "-i" || t == "--interactive" || t == "--stdin" {
				hasStdin = true
			}
			if t == "-t" || t == "--tty" {
				hasTTY = true
			}
			if !strings.HasPrefix(t, "--") && len(t) > 1 {
				cluster := t[1:]
				if strings.ContainsRune(cluster, 'i') {
					hasStdin = true
				}
				if strings.ContainsRune(cluster, 't') {
					hasTTY = true
				}
			}
		}
		return hasStdin && hasTTY

	case cmdLower == "kubectl":
		execIdx := -1
		for i, t := range tokens {
			if t == "exec" {
				execIdx = i
				break
			}
		}
		if execIdx < 0 {
			return false
		}

		hasStdin := false
		hasTTY := false
		for _, t := range tokens[execIdx+1:] {
			if t == "--" {
				// Rest is the remote command.
				break
			}
			if t == "-it" || t == "-ti" {
				return true
			}
			if t == "-i" || t == "--stdin" {
				hasStdin = true
			}
			if t == "-t" || t == "--tty" {
				hasTTY = true
			}
			if strings.HasPrefix(t, "-") && !strings.HasPrefix(t, "--") && len(t) > 1 {
				cluster := t[1:]
				if strings.ContainsRune(cluster, 'i') {
					hasStdin = true
				}
				if strings.ContainsRune(cluster, 't') {
					hasTTY = true
				}
			}
		}
		return hasStdin && hasTTY
	}

	return false
}

// gitWantsPTY reports whether a git subcommand opens an interactive editor
// or pager.
func gitWantsPTY(tokens []string) bool {
	// Skip git global options that may precede the subcommand. Options that
	// consume a value: -C <path>, -c <name=val>, --git-dir <path>,
	// --work-tree <path>, --namespace <ns>.
	i := 1
scan:
	for i < len(tokens) {
		t := tokens[i]
		switch {
		case t == "-C" || t == "-c" || t == "--git-dir" || t == "--work-tree" || t == "--namespace":
			i += 2
		case strings.HasPrefix(t, "--git-dir=") ||
			strings.HasPrefix(t, "--work-tree=") ||
			strings.HasPrefix(t, "--namespace="):
			i++
		case !strings.HasPrefix(t, "-"):
			// First non-option token is the subcommand.
			break scan
		default:
			i++
		}
	}
	if i >= len(tokens) {
		return false
	}
	sub := tokens[i]

	switch sub {
	case "add":
		for _, t := range tokens {
			if t == "-p" || t == "-i" {
				return true
			}
		}
		return false
	case "rebase":
		for _, t := range tokens {
			if t == "-i" {
				return true
			}
		}
		return false
	case "commit":
		// -e/--edit can override -m/-F and reopen the editor; --no-edit
		// overrides everything.
		noEditor := false
		forceEditor := false
		for _, t := range tokens[i+1:] {
			if t == "-e" || t == "--edit" {
				forceEditor = true
			}
			if t == "-m" || t == "--message" ||
				strings.HasPrefix(t, "-m") || strings.HasPrefix(t, "--message=") {
				noEditor = true
			}
			if t == "-F" || t == "--file" || strings.HasPrefix(t, "--file=") {
				noEditor = true
			}
			if t == "--no-edit" {
				noEditor = true
				forceEditor = false
			}
		}
		return forceEditor || !noEditor
	}
	return false
}

// sshTwoArgOptions are the ssh options that consume the following token.
var sshTwoArgOptions = map[string]bool{
	"-p": true, "-l": true, "-i": true, "-F": true, "-J": true, "-b": true,
	"-c": true, "-D": true, "-L": true, "-R": true, "-S": true, "-E": true,
	"-B": true,
}

// sshWantsPTY implements the ssh-specific rules: explicit -t/-T flags,
// batch and control modes, RequestTTY options in both spaced and inline
// forms, and the presence of a remote command after the host.
func sshWantsPTY(tokens []string) bool {
	// Bare "ssh" is an interactive client invocation.
	if len(tokens) == 1 {
		return true
	}

	// ssh option values are case-insensitive.
	tokensLC := make([]string, len(tokens))
	for i, t := range tokens {
		tokensLC[i] = strings.ToLower(t)
	}

	hasT := false
	for _, t := range tokensLC {
		if t == "-t" || t == "-tt" {
			hasT = true
		}
	}
	// -T (uppercase) explicitly disables PTY allocation.
	for _, t := range tokens {
		if t == "-T" {
			return false
		}
	}

	// -N (no remote command), -O (control operations), and -W (stdio
	// forwarding) deny a PTY unless -t is explicit.
	if !hasT {
		for _, t := range tokens {
			if t == "-N" || t == "-O" {
				return false
			}
		}
		for _, t := range tokensLC {
			if t == "-w" {
				return false
			}
		}
	}

	if hasT {
		return true
	}

	// BatchMode=yes: inline -oBatchMode=yes form.
	for _, t := range tokensLC {
		if val, ok := strings.CutPrefix(t, "-obatchmode="); ok && val == "yes" {
			return false
		}
	}
	// BatchMode=yes: spaced -o BatchMode=yes and -o BatchMode = yes forms.
	for i, t := range tokensLC {
		if t == "-o" && i+1 < len(tokensLC) {
			if tokensLC[i+1] == "batchmode=yes" {
				return false
			}
			if tokensLC[i+1] == "batchmode" && i+3 < len(tokensLC) &&
				tokensLC[i+2] == "=" && tokensLC[i+3] == "yes" {
				return false
			}
		}
	}

	// RequestTTY, spaced forms.
	for i, t := range tokensLC {
		if t == "-o" && i+1 < len(tokensLC) {
			if val, ok := strings.CutPrefix(tokensLC[i+1], "requesttty="); ok {
				switch val {
				case "yes", "force":
					return true
				case "no":
					return false
				}
			}
			if tokensLC[i+1] == "requesttty" && i+3 < len(tokensLC) && tokensLC[i+2] == "=" {
				switch tokensLC[i+3] {
				case "yes", "force":
					return true
				case "no":
					return false
				}
			}
		}
	}
	// RequestTTY, inline form.
	for _, t := range tokensLC {
		if val, ok := strings.CutPrefix(t, "-orequesttty="); ok {
			switch val {
			case "yes", "force":
				return true
			case "no":
				return false
			}
		}
	}

	// Skip every two-argument option to find the host.
	hostIdx := -1
	skipNext := false
	for i := 1; i < len(tokens); i++ {
		arg := tokens[i]
		if skipNext {
			skipNext = false
			continue
		}
		if sshTwoArgOptions[arg] || arg == "-o" {
			skipNext = true
			continue
		}
		if arg == "--" {
			if i+1 < len(tokens) {
				hostIdx = i + 1
			}
			break
		}
		if !strings.HasPrefix(arg, "-") && !strings.Contains(arg, "=") {
			hostIdx = i
			break
		}
	}

	// A remote command after the host means no interactive session.
	if hostIdx >= 0 && hostIdx+1 < len(tokens) {
		return false
	}

	// Plain interactive login.
	return true
}
