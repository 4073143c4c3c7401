package score

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mchmarny/gradestat/pkg/i18n"
)

const (
	// DefaultCapacity is the maximum number of students accepted in one run.
	DefaultCapacity = 1000

	MinScore = 0
	MaxScore = 100
)

// Collector prompts for a student count and that many scores.
type Collector struct {
	In       io.Reader
	Out      io.Writer
	Capacity int
	Messages *i18n.Messages
}

// NewCollector returns a Collector with the default capacity and catalog.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		In:       in,
		Out:      out,
		Capacity: DefaultCapacity,
		Messages: i18n.Default(),
	}
}

// Collect reads the count and then each score. On any validation failure the
// user-facing message is written to Out, collection stops and a non-nil error
// is returned together with a nil slice.
func (c *Collector) Collect(ctx context.Context) ([]int, error) {
	if c.In == nil || c.Out == nil {
		return nil, errors.New("collector input and output required")
	}
	if c.Capacity < 1 {
		return nil, fmt.Errorf("invalid capacity: %d", c.Capacity)
	}
	m := c.Messages
	if m == nil {
		m = i18n.Default()
	}

	s := bufio.NewScanner(c.In)
	s.Split(bufio.ScanWords)

	if err := c.prompt(m.CountPrompt); err != nil {
		return nil, err
	}
	n, err := c.readInt(s, 0, m)
	if err != nil {
		return nil, err
	}

	if n > c.Capacity {
		return nil, c.reject(&InputError{Kind: ErrCountTooLarge, Value: strconv.Itoa(n)},
			fmt.Sprintf(m.CountTooLarge, c.Capacity))
	}
	if n <= 0 {
		return nil, c.reject(&InputError{Kind: ErrCountNotPositive, Value: strconv.Itoa(n)},
			m.CountNotPositive)
	}
	slog.Debug("collecting scores", "count", n)

	// Capacity may be far above n; append grows the slice
	scores := make([]int, 0, min(n, DefaultCapacity))
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collecting scores: %w", err)
		}
		if err := c.prompt(fmt.Sprintf(m.ScorePrompt, i)); err != nil {
			return nil, err
		}
		v, err := c.readInt(s, i, m)
		if err != nil {
			return nil, err
		}
		if v < MinScore || v > MaxScore {
			return nil, c.reject(&InputError{Kind: ErrScoreOutOfRange, Index: i, Value: strconv.Itoa(v)},
				fmt.Sprintf(m.ScoreOutOfRange, MinScore, MaxScore))
		}
		scores = append(scores, v)
	}

	return scores, nil
}

func (c *Collector) prompt(text string) error {
	if _, err := fmt.Fprint(c.Out, text); err != nil {
		return fmt.Errorf("writing prompt: %w", err)
	}
	return nil
}

func (c *Collector) reject(ie *InputError, msg string) error {
	slog.Debug("input rejected", "error", ie)
	// the prompt left the cursor mid-line
	if _, err := fmt.Fprintf(c.Out, "\n%s\n", msg); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return ie
}

func (c *Collector) readInt(s *bufio.Scanner, idx int, m *i18n.Messages) (int, error) {
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, fmt.Errorf("%w: %w", ErrInputEnded, io.ErrUnexpectedEOF)
	}

	tok := s.Text()
	v, err := strconv.Atoi(tok)
	if errors.Is(err, strconv.ErrRange) {
		return 0, c.rejectRange(tok, idx, m)
	}
	if err != nil {
		return 0, c.reject(&InputError{Kind: ErrNotANumber, Index: idx, Value: tok},
			fmt.Sprintf(m.NotANumber, tok))
	}
	return v, nil
}

// rejectRange handles integers too large for int: they are valid numbers but
// can never be an acceptable count or score.
func (c *Collector) rejectRange(tok string, idx int, m *i18n.Messages) error {
	switch {
	case idx > 0:
		return c.reject(&InputError{Kind: ErrScoreOutOfRange, Index: idx, Value: tok},
			fmt.Sprintf(m.ScoreOutOfRange, MinScore, MaxScore))
	case strings.HasPrefix(tok, "-"):
		return c.reject(&InputError{Kind: ErrCountNotPositive, Value: tok}, m.CountNotPositive)
	default:
		return c.reject(&InputError{Kind: ErrCountTooLarge, Value: tok},
			fmt.Sprintf(m.CountTooLarge, c.Capacity))
	}
}
