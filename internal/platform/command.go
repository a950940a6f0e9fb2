package platform

import (
	"context"
	"fmt"
)

// CommandError reports a clause the compositor could not parse.
type CommandError struct {
	Command string
	Reason  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("compositor rejected %q: %s", e.Command, e.Reason)
}

// Rejection is a clause the compositor parsed but did not apply, such as a
// criteria selector that matched no container.
type Rejection struct {
	Command string
	Reason  string
}

// RunCommand sends command over c. Transport failures and unparseable
// clauses are returned as errors; clauses that parsed but were not applied
// are returned as rejections.
func RunCommand(ctx context.Context, c Client, command string) ([]Rejection, error) {
	results, err := c.RunCommand(ctx, command)
	if err != nil {
		return nil, err
	}
	var rejected []Rejection
	for _, r := range results {
		if r.Success {
			continue
		}
		if r.ParseError {
			return rejected, &CommandError{Command: command, Reason: r.Error}
		}
		rejected = append(rejected, Rejection{Command: command, Reason: r.Error})
	}
	return rejected, nil
}
