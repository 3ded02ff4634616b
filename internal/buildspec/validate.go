package buildspec

import (
	"fmt"
	"io/fs"
	"strings"
)

// Validate checks a parsed build definition against its build context.
// contextDir may be nil, which skips the file-existence checks. Findings
// report violations; nothing is rewritten.
func Validate(spec *BuildSpec, contextDir fs.FS) []Finding {
	findings := []Finding{}
	findings = append(findings, checkWorkdirs(spec)...)
	findings = append(findings, checkCopySources(spec, contextDir)...)
	findings = append(findings, checkPorts(spec)...)
	return findings
}

// checkWorkdirs enforces a single consistent working directory per file.
func checkWorkdirs(spec *BuildSpec) []Finding {
	if len(spec.WorkdirSteps) < 2 {
		return nil
	}
	first := spec.WorkdirSteps[0].Path
	findings := []Finding{}
	for _, step := range spec.WorkdirSteps[1:] {
		if step.Path != first {
			findings = append(findings, Finding{
				Code:    FindingWorkdirInconsistent,
				Message: fmt.Sprintf("working directory changes from %q to %q", first, step.Path),
				Line:    step.Line,
			})
		}
	}
	return findings
}

// checkCopySources requires every concrete COPY source to exist in the build
// context. Glob sources and the whole-context copy (".") are not checked.
func checkCopySources(spec *BuildSpec, contextDir fs.FS) []Finding {
	if contextDir == nil {
		return nil
	}
	findings := []Finding{}
	for _, step := range spec.CopySteps {
		for _, src := range step.Sources {
			if src == "." || strings.ContainsAny(src, "*?[") {
				continue
			}
			name := strings.TrimPrefix(src, "./")
			if _, err := fs.Stat(contextDir, name); err != nil {
				findings = append(findings, Finding{
					Code:    FindingManifestMissing,
					Message: fmt.Sprintf("copy source %q not found in build context", src),
					Line:    step.Line,
				})
			}
		}
	}
	return findings
}

// checkPorts asserts every EXPOSE declaration matches the port the startup
// command binds.
func checkPorts(spec *BuildSpec) []Finding {
	if len(spec.ExposedPorts) == 0 {
		return nil
	}
	if spec.Startup == nil {
		return []Finding{{
			Code:    FindingNoStartup,
			Message: "ports are exposed but no startup command is declared",
			Line:    spec.ExposedPorts[0].Line,
		}}
	}

	_, bound, ok := spec.Startup.BoundEndpoint()
	if !ok {
		return nil
	}

	findings := []Finding{}
	for _, decl := range spec.ExposedPorts {
		if decl.Port != bound {
			findings = append(findings, Finding{
				Code:    FindingPortMismatch,
				Message: fmt.Sprintf("declared port %d does not match bound port %d", decl.Port, bound),
				Line:    decl.Line,
			})
		}
	}
	return findings
}
