package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass --data, --file or pipe it on stdin")

// payloadFlags selects where a command reads its payload from.
type payloadFlags struct {
	data string
	file string
}

func (p *payloadFlags) register(cmd *cobra.Command, what string) {
	cmd.Flags().StringVar(&p.data, "data", "", what+" as a literal string")
	cmd.Flags().StringVar(&p.file, "file", "", "read "+what+" from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
}

func (p *payloadFlags) read(cmd *cobra.Command) ([]byte, error) {
	switch {
	case p.data != "":
		return []byte(p.data), nil
	case p.file != "" && p.file != "-":
		b, err := os.ReadFile(p.file)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", p.file, err)
		}
		return b, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) && p.file != "-" {
		return nil, errNoInput
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	if len(b) == 0 {
		return nil, errNoInput
	}
	return b, nil
}

// promptCredential reads the presence credential without echo when stdin
// is a terminal and as the first line of stdin otherwise.
func promptCredential(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Credential: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("error reading credential: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading credential: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
