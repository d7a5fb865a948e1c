package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input ends before a valid answer.
var ErrInputClosed = errors.New("console: input closed")

const dimensionsPrompt = "Enter grid dimensions (rows cols): "

// ReadDimensions prompts on w until r yields two positive integers no larger
// than maxRows and maxCols. A cap of 0 or less disables that check.
// Blank lines and non-positive values re-prompt silently.
func ReadDimensions(r io.Reader, w io.Writer, maxRows, maxCols int) (int, int, error) {
	in := lineReader(r)
	for {
		fmt.Fprint(w, dimensionsPrompt)
		line, err := readLine(in)
		if err != nil {
			return 0, 0, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(w, "Please enter exactly two integers for rows and columns.")
			continue
		}
		rows, errR := strconv.Atoi(parts[0])
		cols, errC := strconv.Atoi(parts[1])
		if errR != nil || errC != nil {
			fmt.Fprintln(w, "Invalid input. Please enter integers for rows and columns.")
			continue
		}
		if rows <= 0 || cols <= 0 {
			continue
		}
		if (maxRows > 0 && rows > maxRows) || (maxCols > 0 && cols > maxCols) {
			fmt.Fprintf(w, "Grid dimensions must not exceed %d x %d.\n", maxRows, maxCols)
			continue
		}
		return rows, cols, nil
	}
}

func lineReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; ErrInputClosed follows on the next call.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("console: reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
