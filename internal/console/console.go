// Package console plays the game on a plain line-oriented terminal.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/reflow/wordwrap"
	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/engine"
	"github.com/tatianab/zuul/internal/parser"
)

const prompt = "> "

type Console struct {
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
	width  int
	log    logrus.FieldLogger
}

func New(eng *engine.Engine, in io.Reader, out io.Writer, width int, log logrus.FieldLogger) *Console {
	return &Console{
		engine: eng,
		in:     in,
		out:    out,
		width:  width,
		log:    log,
	}
}

// Run plays until the player quits, the input ends or the session ends. The
// end of the session interrupts a pending read.
func (c *Console) Run() error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go readLines(c.in, lines, readErr, stop)

	c.println("")
	c.println(c.engine.Welcome())

	for {
		c.print(prompt)

		select {
		case <-c.engine.Done():
			c.println("")
			c.println(c.engine.EndMessage())
			return nil

		case err := <-readErr:
			c.engine.Close()
			c.println("")
			c.println(engine.GoodbyeMessage)
			return err

		case line := <-lines:
			// A line that arrives together with the deadline is dropped.
			select {
			case <-c.engine.Done():
				c.println(c.engine.EndMessage())
				return nil
			default:
			}

			res := c.engine.ProcessTurn(parser.Parse(line))
			c.println(res.Output)
			if res.Ended {
				return nil
			}
		}
	}
}

func (c *Console) print(s string) {
	if _, err := fmt.Fprint(c.out, s); err != nil {
		c.log.WithError(err).Warn("writing output")
	}
}

func (c *Console) println(s string) {
	c.print(wordwrap.String(s, c.width) + "\n")
}

// readLines feeds lines from r into lines until r is exhausted or stop is
// closed. The read error, nil at EOF, is reported on errc.
func readLines(r io.Reader, lines chan<- string, errc chan<- error, stop <-chan struct{}) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-stop:
			return
		}
	}
	errc <- scanner.Err()
}
