package review

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConsoleDriver renders a review session as a numbered text menu and
// feeds operator choices back into it. It is bound to plain reader and
// writer so tests can script the whole exchange.
type ConsoleDriver struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsoleDriver creates a driver reading choices from in and writing
// prompts to out.
func NewConsoleDriver(in io.Reader, out io.Writer) *ConsoleDriver {
	return &ConsoleDriver{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the session until it terminates or input runs out. Running
// out of input finishes the session so the memory still gets saved.
func (d *ConsoleDriver) Run(session *Session) error {
	fmt.Fprintln(d.out, strings.Repeat("=", 50))
	fmt.Fprintln(d.out, "INTERACTIVE REVIEW MODE")
	fmt.Fprintln(d.out, strings.Repeat("=", 50))

	for !session.Done() {
		entry := session.Current()
		pos, total := session.Position()

		fmt.Fprintf(d.out, "\n--- Line %d/%d ---\n", pos, total)
		fmt.Fprintf(d.out, "Time: %s\n", entry.Timing)
		fmt.Fprintf(d.out, "Original: %s\n", entry.Text)
		fmt.Fprintf(d.out, "Translation: %s\n", entry.TranslatedText)

		fmt.Fprintln(d.out, "\nOptions:")
		fmt.Fprintln(d.out, "1. Accept and continue")
		fmt.Fprintln(d.out, "2. Edit translation")
		fmt.Fprintln(d.out, "3. Skip to next")
		fmt.Fprintln(d.out, "4. Go back")
		fmt.Fprintln(d.out, "5. Finish review")
		fmt.Fprint(d.out, "\nChoose option (1-5): ")

		choice, ok := d.readLine()
		if !ok {
			return session.Apply(Input{Action: ActionFinish})
		}

		input := Input{Action: ActionAccept}
		switch strings.TrimSpace(choice) {
		case "1":
		case "2":
			fmt.Fprint(d.out, "Enter new translation: ")
			text, _ := d.readLine()
			input = Input{Action: ActionEdit, Text: strings.TrimSpace(text)}
		case "3":
			input.Action = ActionSkip
		case "4":
			input.Action = ActionBack
		case "5":
			input.Action = ActionFinish
		default:
			fmt.Fprintln(d.out, "Invalid choice, continuing...")
		}

		if err := session.Apply(input); err != nil {
			return err
		}
	}

	return nil
}

func (d *ConsoleDriver) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return d.in.Text(), true
}
