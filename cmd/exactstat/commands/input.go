package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"exactstat/numeric"

	"github.com/rs/zerolog/log"
)

// readValues parses the sample from args, or from whitespace-separated
// tokens on stdin when no args are given. Integers stay integers,
// "num/den" tokens become exact fractions, and everything else parses as
// a float, or as an exact decimal with --decimal.
func readValues(args []string) ([]numeric.Value, error) {
	tokens := args
	if len(tokens) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			tokens = append(tokens, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no input values")
	}
	values := make([]numeric.Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseValue(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	log.Debug().Int("count", len(values)).Msg("Parsed input sample")
	return values, nil
}

func parseValue(tok string) (numeric.Value, error) {
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return numeric.Value{}, fmt.Errorf("bad fraction %q: %w", tok, err)
		}
		d, err := strconv.ParseInt(den, 10, 64)
		if err != nil {
			return numeric.Value{}, fmt.Errorf("bad fraction %q: %w", tok, err)
		}
		return numeric.Rat(n, d)
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return numeric.Int(i), nil
	}
	if decimal {
		return numeric.ParseDec(tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return numeric.Value{}, fmt.Errorf("bad value %q: %w", tok, err)
	}
	return numeric.Float(f), nil
}
