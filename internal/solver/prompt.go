package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var positionNames = []string{"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth"}

func positionName(i int) string {
	if i < len(positionNames) {
		return positionNames[i]
	}
	return fmt.Sprintf("position %d", i+1)
}

// Prompt asks for a hint per position and then for the dud letters. A
// malformed answer is asked again.
func Prompt(r io.Reader, w io.Writer, length int) ([]Hint, string, error) {
	sc := bufio.NewScanner(r)
	readLine := func(prompt string) (string, error) {
		fmt.Fprint(w, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	hints := make([]Hint, length)
	for i := 0; i < length; i++ {
		for {
			line, err := readLine(positionName(i) + " known letter: ")
			if err != nil {
				return nil, "", err
			}
			h, err := ParseHint(line)
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			hints[i] = h
			break
		}
	}
	for {
		line, err := readLine("Known duds: ")
		if err != nil {
			return nil, "", err
		}
		duds := strings.ToLower(strings.TrimSpace(line))
		if !lettersOnly(duds) {
			fmt.Fprintln(w, ErrBadDuds)
			continue
		}
		return hints, duds, nil
	}
}
