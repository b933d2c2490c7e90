package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"weekplan/internal/config"
	"weekplan/internal/exitcode"
	"weekplan/internal/service"
)

// MinIDPrefix is the shortest id prefix accepted as a task reference.
const MinIDPrefix = 4

// TaskRef is a parsed task reference: either a 1-based position as shown
// by list, or a prefix of a task id.
type TaskRef struct {
	Position int    // 1-based; 0 when IDPrefix is set
	IDPrefix string // lower-case hex, at least MinIDPrefix long
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrAmbiguousRef indicates an id prefix matching more than one task.
	ErrAmbiguousRef = errors.New("ambiguous task reference")
)

// ParseTaskRef parses a task reference from args.
//
//  1. All digits: a position. Digit-only strings are never id prefixes.
//  2. At least MinIDPrefix hex digits (dashes allowed): an id prefix.
//  3. Anything else is invalid.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	ref := strings.TrimSpace(args[0])
	if isAllDigits(ref) {
		n, err := strconv.Atoi(ref)
		if err != nil {
			// Too large for an int: past the end of any list.
			n = math.MaxInt
		}
		return TaskRef{Position: n}, nil
	}

	ref = strings.ToLower(ref)
	if isIDPrefix(ref) {
		return TaskRef{IDPrefix: ref}, nil
	}
	return TaskRef{}, fmt.Errorf("invalid task reference: %s", args[0])
}

// Target is a resolved task reference. ID is set when the reference was an
// id prefix; otherwise Index holds the 0-based position.
type Target struct {
	Index int
	ID    string
}

// Found reports whether the reference can point at a task.
func (t Target) Found() bool { return t.ID != "" || t.Index >= 0 }

// Resolve maps the reference onto the current list. A position past the end
// is left for the service to treat as out of range; an id prefix matching
// nothing yields a Target that is not Found.
func (r TaskRef) Resolve(ctx context.Context, svc service.Service) (Target, error) {
	if r.IDPrefix == "" {
		return Target{Index: r.Position - 1}, nil
	}
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return Target{Index: -1}, err
	}
	match := Target{Index: -1}
	for _, t := range tasks {
		if !strings.HasPrefix(strings.ToLower(t.ID), r.IDPrefix) {
			continue
		}
		if match.ID != "" {
			return Target{Index: -1}, fmt.Errorf("%w: %s", ErrAmbiguousRef, r.IDPrefix)
		}
		match.ID = t.ID
	}
	return match, nil
}

// resolveArgs parses and resolves the reference in args. When done is true
// the command should return code immediately.
func resolveArgs(ctx context.Context, cfg *config.Config, svc service.Service, args []string, errOut io.Writer) (target Target, code int, done bool) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return Target{Index: -1}, usageFailure(errOut, "%v", err), true
	}
	target, err = ref.Resolve(ctx, svc)
	if err != nil {
		if errors.Is(err, ErrAmbiguousRef) {
			return target, usageFailure(errOut, "%v", err), true
		}
		return target, storageFailure(errOut, err), true
	}
	if !target.Found() {
		cfg.Log().Debug("task reference matched nothing", "ref", args[0])
		return target, exitcode.Success, true
	}
	return target, exitcode.Success, false
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isIDPrefix(s string) bool {
	hex := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
			hex++
		case r == '-':
		default:
			return false
		}
	}
	return hex >= MinIDPrefix
}
