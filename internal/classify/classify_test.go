package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDecider skips the live-terminal probe so decisions depend only on the
// command text.
var testDecider = decider{testMode: true}

func TestDecideShellMetacharacters(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"ls | grep txt", false},
		{"vim > output.txt", false},
		{"cat < input.txt", false},
		{"sleep 10 &", false},
		{"cd /tmp; vim x", false},

		// Operators inside quotes, backticks, or $(...) do not affect the
		// decision.
		{"vim $(git ls-files | head -1)", true},
		{"echo `date > /dev/null`", false},
		{`echo "a | b"`, false},
		{`vim "file|name"`, true},
		{`vim 'a > b'`, true},
		{`git commit -m "fix; cleanup"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideSSH(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"ssh", true},
		{"ssh host", true},
		{"ssh -t host", true},
		{"ssh -tt host", true},
		{"ssh -T host", false},
		{"ssh host ls", false},
		{"ssh -t host ls", true},
		{"ssh -N -L 8080:localhost:80 host", false},
		{"ssh -O check host", false},
		{"ssh -W target:22 jump", false},
		{"ssh -o BatchMode=yes host true", false},
		{"ssh -o batchmode=yes host", false},
		{"ssh -oBatchMode=yes host", false},
		{"ssh -o RequestTTY=yes host ls", true},
		{"ssh -o RequestTTY=force host", true},
		{"ssh -o RequestTTY=no host", false},
		{"ssh -oRequestTTY=yes host remote-cmd", true},
		{"ssh -p 2222 host", true},
		{"ssh -l user -i key host", true},
		{"ssh -p 2222 host uptime", false},
		{"ssh -- host", true},
		{"ssh -- host ls", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideInterpreters(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"python", true},
		{"python3", true},
		{"python script.py", false},
		{`python -c "print(1)"`, false},
		{"python -i script.py", true},
		{"python --interactive script.py", true},
		{"node", true},
		{"node server.js", false},
		{"node -e 'console.log(1)'", false},
		{"irb", true},
		{"pry", true},

		// Debuggers always get a terminal.
		{"python -m pdb script.py", true},
		{"python3 -m ipdb script.py", true},
		{"python -m json.tool data.json", false},
		{"node inspect app.js", true},
		{"node --inspect-brk app.js", true},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideShells(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"bash", true},
		{"zsh", true},
		{"fish", true},
		{"bash -c 'echo hi'", false},
		{"bash -i -c 'echo hi'", true},
		{"sh -c ls", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideContainers(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"docker run -it image cmd", true},
		{"docker run -ti image", true},
		{"docker run -i -t image", true},
		{"docker run -t image", false},
		{"docker run -i image", false},
		{"docker run image cmd", false},
		{"docker exec -it container bash", true},
		{"docker exec container ls", false},
		{"docker compose exec -it web sh", true},
		{"docker-compose exec web ls", false},
		{"podman run -it image", true},
		{"docker ps", false},

		// Flags after the image name belong to the in-container command and
		// never affect the decision.
		{"docker run image cmd -it", false},
		{"docker run image -it", false},

		{"kubectl exec -it pod -- bash", true},
		{"kubectl exec -i -t pod -- sh", true},
		{"kubectl exec pod -- ls", false},
		{"kubectl exec -ti pod", true},
		{"kubectl exec pod -- sh -it", false},
		{"kubectl get pods", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideGit(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{`git commit -m "msg"`, false},
		{"git commit", true},
		{"git commit --message=msg", false},
		{"git commit -F msg.txt", false},
		{"git commit -m msg -e", true},
		{"git commit --no-edit", false},
		{"git commit -e --no-edit", false},
		{"git add -p", true},
		{"git add -i", true},
		{"git add .", false},
		{"git rebase -i HEAD~3", true},
		{"git rebase main", false},
		{"git -C /repo commit", true},
		{"git -c user.name=x commit -m msg", false},
		{"git status", false},
		{"git log", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideSudoAndWrappers(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"sudo apt update", true},
		{"sudo -n apt update", false},
		{"sudo -S apt update", false},
		{"sudo --askpass apt update", false},

		// Transparent wrappers are peeled to reach the real command.
		{"timeout 30 vim file.txt", true},
		{"timeout -s KILL 30 ls", false},
		{"env FOO=bar vim", true},
		{"env -i FOO=bar ls", false},
		{"nice -n 10 htop", true},
		{"stdbuf -oL less file", true},
		{"doas -u root htop", true},
		{"sshpass -p secret ssh host", true},
		{"sshpass -p secret ssh host ls", false},

		// Wrappers nest.
		{"env FOO=bar timeout 30 vim", true},
		{"nice -n 5 env FOO=bar ls", false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, testDecider.decide(tt.cmd))
		})
	}
}

func TestDecideKnownTUIs(t *testing.T) {
	for _, cmd := range []string{
		"vim file.txt", "nvim", "nano README.md", "less file.txt",
		"htop", "tmux", "fzf", "lazygit", "psql -h localhost", "k9s",
	} {
		t.Run(cmd, func(t *testing.T) {
			assert.True(t, testDecider.decide(cmd))
		})
	}

	for _, cmd := range []string{"ls", "echo hi", "cat file", "grep foo bar"} {
		t.Run(cmd, func(t *testing.T) {
			assert.False(t, testDecider.decide(cmd))
		})
	}

	// Paths are reduced to the command name.
	assert.True(t, testDecider.decide("/usr/bin/vim file.txt"))
}

func TestDecideMalformedInput(t *testing.T) {
	// Unbalanced quotes degrade to "no PTY", never an error.
	assert.False(t, testDecider.decide(`vim "unclosed`))
	assert.False(t, testDecider.decide("vim 'unclosed"))
	assert.False(t, testDecider.decide(""))
	assert.False(t, testDecider.decide("   "))
}

func TestDecidePipelineTail(t *testing.T) {
	tail := decider{testMode: true, pipelineTail: true}

	// The final unredirected segment is classified on its own.
	assert.True(t, tail.decide("git log | less"))
	assert.False(t, tail.decide("git log | cat"))
	assert.False(t, tail.decide("git log | less > out.txt"))

	// Without the toggle, pipelines never get a PTY.
	assert.False(t, testDecider.decide("git log | less"))
}

func TestSplitTokens(t *testing.T) {
	tokens, err := splitTokens(`git commit -m "two words"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "commit", "-m", "two words"}, tokens)

	tokens, err = splitTokens(`echo 'single quoted'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "single quoted"}, tokens)

	tokens, err = splitTokens(`echo escaped\ space`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "escaped space"}, tokens)

	_, err = splitTokens(`echo "unbalanced`)
	assert.Error(t, err)
}

func TestForcePrefix(t *testing.T) {
	assert.True(t, ForcePTY(":pty ls"))
	assert.False(t, ForcePTY("ls"))
	assert.Equal(t, "ls", StripForcePrefix(":pty ls"))
	assert.Equal(t, "ls", StripForcePrefix("ls"))
}
