package buildspec

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func parseTestdata(t *testing.T, name string) *BuildSpec {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open testdata: %v", err)
	}
	defer f.Close()

	spec, err := Parse(f)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return spec
}

func TestParseWebVariant(t *testing.T) {
	spec := parseTestdata(t, "Dockerfile.web")

	if spec.BaseImage != "ghcr.io/astral-sh/uv:python3.13-trixie" {
		t.Fatalf("unexpected base image: %s", spec.BaseImage)
	}
	if len(spec.WorkdirSteps) != 1 || spec.WorkdirSteps[0].Path != "/app" {
		t.Fatalf("unexpected workdirs: %+v", spec.WorkdirSteps)
	}
	if len(spec.CopySteps) != 2 {
		t.Fatalf("expected 2 copy steps, got %d", len(spec.CopySteps))
	}
	if !reflect.DeepEqual(spec.CopySteps[0].Sources, []string{"pyproject.toml", "uv.lock"}) {
		t.Fatalf("unexpected manifest copy: %+v", spec.CopySteps[0])
	}
	if len(spec.ExposedPorts) != 1 || spec.ExposedPorts[0].Port != 8000 {
		t.Fatalf("unexpected exposed ports: %+v", spec.ExposedPorts)
	}
	if spec.Startup == nil || spec.Startup.Shell {
		t.Fatalf("expected exec-form startup, got %+v", spec.Startup)
	}

	host, port, ok := spec.Startup.BoundEndpoint()
	if !ok || host != "0.0.0.0" || port != 8000 {
		t.Fatalf("unexpected bound endpoint: %s:%d ok=%v", host, port, ok)
	}
}

func TestParseLineContinuation(t *testing.T) {
	input := `FROM alpine:3.20
RUN apk add --no-cache \
    bash \
    coreutils
EXPOSE 9090/tcp 9091/udp
CMD server --port=9090
`
	spec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.RunSteps) != 1 {
		t.Fatalf("expected 1 run step, got %d", len(spec.RunSteps))
	}
	if !strings.Contains(spec.RunSteps[0].Command, "coreutils") {
		t.Fatalf("continuation lost: %q", spec.RunSteps[0].Command)
	}
	if len(spec.ExposedPorts) != 2 || spec.ExposedPorts[1].Protocol != "udp" {
		t.Fatalf("unexpected ports: %+v", spec.ExposedPorts)
	}
	if !spec.Startup.Shell {
		t.Fatalf("expected shell-form startup")
	}
	if _, port, ok := spec.Startup.BoundEndpoint(); !ok || port != 9090 {
		t.Fatalf("expected bound port 9090, got %d", port)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "missing from", input: "WORKDIR /app\n"},
		{name: "bad expose", input: "FROM alpine\nEXPOSE eighty\n"},
		{name: "copy without dest", input: "FROM alpine\nCOPY onlysource\n"},
		{name: "broken exec form", input: "FROM alpine\nCMD [\"unterminated\n"},
		{name: "dangling continuation", input: "FROM alpine\nRUN apk add \\\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.input)); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	first := parseTestdata(t, "Dockerfile.web")
	second := parseTestdata(t, "Dockerfile.web")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parsing the same bytes twice diverged")
	}
}

func TestBoundEndpointAbsent(t *testing.T) {
	spec, err := Parse(strings.NewReader("FROM alpine\nCMD [\"sleep\", \"60\"]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, ok := spec.Startup.BoundEndpoint(); ok {
		t.Fatalf("expected no bound endpoint")
	}
}
