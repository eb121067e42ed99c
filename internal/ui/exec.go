package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/atomicstack/menu-maker/internal/logging/events"
	"github.com/atomicstack/menu-maker/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// commandFinishedMsg re-enters the event loop after a child command returns
// the terminal.
type commandFinishedMsg struct {
	label    string
	exitCode int
	err      error
}

// shellCommand runs a menu entry through `sh -c` with the real terminal
// attached. It implements tea.ExecCommand so the program releases the
// terminal before Run and reacquires it after, as a single paired cycle.
type shellCommand struct {
	command string
	pause   bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	exitCode int
}

func (c *shellCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *shellCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *shellCommand) SetStderr(w io.Writer) { c.stderr = w }

func (c *shellCommand) Run() error {
	cmd := exec.Command("sh", "-c", c.command)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is a result to report, not a launcher failure.
			c.exitCode = exitErr.ExitCode()
			err = nil
		} else {
			fmt.Fprintf(c.stderr, "Failed to run command: %v\r\n", err)
			c.waitForEnter()
			return err
		}
	}
	if c.pause {
		fmt.Fprintf(c.stdout, "\r\nCommand exited with status %d. Press Enter to return...", c.exitCode)
		c.waitForEnter()
	}
	return nil
}

func (c *shellCommand) waitForEnter() {
	if c.stdin == nil {
		return
	}
	reader := bufio.NewReader(c.stdin)
	_, _ = reader.ReadString('\n')
}

// runCommand suspends the interface, hands the terminal to the entry's shell
// command, and schedules the finished message that resumes browsing.
func (m *Model) runCommand(node *menu.Node) tea.Cmd {
	if node == nil || node.IsCategory() || node.Command == "" {
		return nil
	}
	m.mode = ModeSuspended
	m.pendingLabel = node.Label
	m.forceClearInfo()
	events.Exec.Start(node.Label, node.Command)
	sc := &shellCommand{command: node.Command, pause: node.Pause}
	label := node.Label
	return tea.Exec(sc, func(err error) tea.Msg {
		return commandFinishedMsg{label: label, exitCode: sc.exitCode, err: err}
	})
}

func (m *Model) handleCommandFinishedMsg(msg tea.Msg) tea.Cmd {
	fin, ok := msg.(commandFinishedMsg)
	if !ok {
		return nil
	}
	m.mode = ModeBrowse
	m.pendingLabel = ""
	events.Exec.Finish(fin.label, fin.exitCode, fin.err)
	if fin.err != nil {
		m.errMsg = fmt.Sprintf("Command failed: %v", fin.err)
		return nil
	}
	m.errMsg = ""
	if fin.exitCode != 0 || m.verbose {
		m.setInfo(fmt.Sprintf("Command exited with status %d", fin.exitCode))
	}
	return nil
}
