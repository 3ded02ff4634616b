package buildspec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a Dockerfile-style build definition. It covers the subset the
// deployment files use: FROM, WORKDIR, COPY, RUN, ENV, EXPOSE, CMD and
// ENTRYPOINT, with comments and backslash line continuations. Instructions
// outside that subset are tolerated and skipped.
func Parse(r io.Reader) (*BuildSpec, error) {
	spec := &BuildSpec{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	startLine := 0
	pending := ""

	flush := func() error {
		if pending == "" {
			return nil
		}
		err := spec.apply(pending, startLine)
		pending = ""
		return err
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if pending == "" {
			startLine = lineNo
		}
		if strings.HasSuffix(line, "\\") {
			pending += strings.TrimSuffix(line, "\\") + " "
			continue
		}
		pending += line
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if pending != "" {
		return nil, fmt.Errorf("line %d: unterminated line continuation", startLine)
	}

	if spec.BaseImage == "" {
		return nil, fmt.Errorf("missing FROM instruction")
	}
	return spec, nil
}

func (s *BuildSpec) apply(line string, lineNo int) error {
	instruction, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToUpper(instruction) {
	case "FROM":
		image, _, _ := strings.Cut(rest, " ")
		if image == "" {
			return fmt.Errorf("line %d: FROM requires an image reference", lineNo)
		}
		s.BaseImage = image
	case "WORKDIR":
		if rest == "" {
			return fmt.Errorf("line %d: WORKDIR requires a path", lineNo)
		}
		s.WorkdirSteps = append(s.WorkdirSteps, WorkdirStep{Path: rest, Line: lineNo})
	case "COPY", "ADD":
		fields := splitArgs(rest)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: %s requires source and destination", lineNo, strings.ToUpper(instruction))
		}
		s.CopySteps = append(s.CopySteps, CopyStep{
			Sources: fields[:len(fields)-1],
			Dest:    fields[len(fields)-1],
			Line:    lineNo,
		})
	case "RUN":
		if rest == "" {
			return fmt.Errorf("line %d: RUN requires a command", lineNo)
		}
		s.RunSteps = append(s.RunSteps, RunStep{Command: rest, Line: lineNo})
	case "ENV":
		key, value, ok := strings.Cut(rest, "=")
		if !ok {
			key, value, _ = strings.Cut(rest, " ")
		}
		s.EnvSteps = append(s.EnvSteps, EnvStep{Key: key, Value: strings.TrimSpace(value), Line: lineNo})
	case "EXPOSE":
		for _, field := range strings.Fields(rest) {
			portPart, proto, ok := strings.Cut(field, "/")
			if !ok {
				proto = "tcp"
			}
			port, err := strconv.Atoi(portPart)
			if err != nil || port < 1 || port > 65535 {
				return fmt.Errorf("line %d: invalid EXPOSE port %q", lineNo, field)
			}
			s.ExposedPorts = append(s.ExposedPorts, PortDecl{Port: port, Protocol: proto, Line: lineNo})
		}
	case "CMD", "ENTRYPOINT":
		argv, shell, err := parseCommandForm(rest)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.Startup = &Startup{Argv: argv, Shell: shell, Line: lineNo}
	default:
		// USER, ARG, LABEL and friends carry nothing we validate
	}
	return nil
}

// parseCommandForm handles both the JSON array (exec) form and the shell
// form of CMD/ENTRYPOINT.
func parseCommandForm(rest string) ([]string, bool, error) {
	if strings.HasPrefix(rest, "[") {
		var argv []string
		if err := json.Unmarshal([]byte(rest), &argv); err != nil {
			return nil, false, fmt.Errorf("invalid exec-form command: %w", err)
		}
		return argv, false, nil
	}
	return strings.Fields(rest), true, nil
}

// splitArgs splits instruction arguments, honoring double quotes around
// paths with spaces.
func splitArgs(s string) []string {
	out := []string{}
	cur := strings.Builder{}
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
