package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

var ErrQuit = errors.New("quiz abandoned")

const help = "Commands: 1-%d select an option, n next, p previous, q quit"

// Run plays sess to completion on a line-oriented terminal and returns the
// result. Quitting or closing the input returns ErrQuit.
func Run(ctx context.Context, sess *quiz.Session, in io.Reader, out io.Writer) (quiz.Result, error) {
	reader := bufio.NewReader(in)

	for sess.State() != quiz.StateFinished {
		if err := ctx.Err(); err != nil {
			return quiz.Result{}, err
		}

		snap, err := sess.Snapshot()
		if err != nil {
			return quiz.Result{}, err
		}
		printSnapshot(out, snap)

		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(out)
			return quiz.Result{}, ErrQuit
		}

		if err := handle(out, sess, snap, strings.TrimSpace(strings.ToLower(line))); err != nil {
			return quiz.Result{}, err
		}
	}

	res, err := sess.Result()
	if err != nil {
		return quiz.Result{}, err
	}
	rows, err := sess.ReviewRows()
	if err != nil {
		return quiz.Result{}, err
	}
	PrintResult(out, res)
	PrintReview(out, rows)
	return res, nil
}

func handle(out io.Writer, sess *quiz.Session, snap quiz.Snapshot, cmd string) error {
	switch cmd {
	case "q", "quit":
		return ErrQuit
	case "n", "next", "":
		return sess.Advance()
	case "p", "prev", "previous":
		if !snap.CanRetreat {
			fmt.Fprintln(out, "Already at the first question.")
			return nil
		}
		return sess.Retreat()
	}

	n, err := strconv.Atoi(cmd)
	if err != nil {
		fmt.Fprintf(out, help+"\n", len(snap.Question.Options))
		return nil
	}

	fb, err := sess.RecordAnswer(n - 1)
	if errors.Is(err, quiz.ErrInvalidOptionIndex) {
		fmt.Fprintf(out, "Pick a number between 1 and %d.\n", len(snap.Question.Options))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, fb.Message)
	if !fb.Correct {
		fmt.Fprintf(out, "Correct answer: %s\n", snap.Question.Answer)
	}
	if fb.Explanation != "" {
		fmt.Fprintf(out, "Explanation: %s\n", fb.Explanation)
	}
	return nil
}

func printSnapshot(out io.Writer, snap quiz.Snapshot) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s | %s | %s (%d%%)\n", snap.ModeLabel, snap.ScopeLabel, snap.ProgressText, snap.ProgressPercent)
	fmt.Fprintf(out, "Q%d: %s\n", snap.Index+1, snap.Question.Text)
	for i, opt := range snap.Question.Options {
		marker := " "
		if snap.Selected != nil && *snap.Selected == i {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %d. %s\n", marker, i+1, opt)
	}
	fmt.Fprintf(out, "[n] %s", snap.NextLabel)
	if snap.CanRetreat {
		fmt.Fprint(out, "  [p] Previous")
	}
	fmt.Fprintln(out, "  [q] Quit")
}

func PrintResult(out io.Writer, res quiz.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, res.Title)
	fmt.Fprintln(out, res.Subtitle)
	fmt.Fprintf(out, "Score: %d%%  Correct: %d  Incorrect: %d  Time: %s\n",
		res.Percentage, res.Correct, res.Incorrect, res.TimeSpent)
}

func PrintReview(out io.Writer, rows []quiz.ReviewRow) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Review")
	for _, row := range rows {
		mark := "x"
		if row.Correct {
			mark = "v"
		}
		fmt.Fprintf(out, "[%s] %d. %s\n", mark, row.Number, row.Question)
		fmt.Fprintf(out, "    Your answer: %s\n", row.UserAnswer)
		if !row.Correct {
			fmt.Fprintf(out, "    Correct answer: %s\n", row.CorrectAnswer)
		}
		if row.Explanation != "" {
			fmt.Fprintf(out, "    %s\n", row.Explanation)
		}
	}
}
