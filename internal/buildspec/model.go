package buildspec

import "fmt"

// BuildSpec is the parsed form of one container build definition. It models
// only build-time configuration: nothing here binds ports or runs processes.
type BuildSpec struct {
	BaseImage    string
	WorkdirSteps []WorkdirStep
	CopySteps    []CopyStep
	RunSteps     []RunStep
	EnvSteps     []EnvStep
	ExposedPorts []PortDecl
	Startup      *Startup
}

type WorkdirStep struct {
	Path string
	Line int
}

type CopyStep struct {
	Sources []string
	Dest    string
	Line    int
}

type RunStep struct {
	Command string
	Line    int
}

type EnvStep struct {
	Key   string
	Value string
	Line  int
}

// PortDecl is EXPOSE metadata. Declaring a port does not cause the startup
// command to bind it.
type PortDecl struct {
	Port     int
	Protocol string
	Line     int
}

// Startup is the declared process launch command (CMD or ENTRYPOINT, the
// last one wins for each).
type Startup struct {
	Argv  []string
	Shell bool
	Line  int
}

// BoundEndpoint extracts the host and port the startup command will bind,
// when it is stated as --host/--port style flags. ok is false when the argv
// doesn't declare a port.
func (s *Startup) BoundEndpoint() (host string, port int, ok bool) {
	if s == nil {
		return "", 0, false
	}
	host = ""
	port = 0
	for i := 0; i < len(s.Argv); i++ {
		arg := s.Argv[i]
		switch {
		case arg == "--host" && i+1 < len(s.Argv):
			host = s.Argv[i+1]
			i++
		case len(arg) > 7 && arg[:7] == "--host=":
			host = arg[7:]
		case (arg == "--port" || arg == "-p") && i+1 < len(s.Argv):
			fmt.Sscanf(s.Argv[i+1], "%d", &port)
			i++
		case len(arg) > 7 && arg[:7] == "--port=":
			fmt.Sscanf(arg[7:], "%d", &port)
		}
	}
	return host, port, port != 0
}

// Finding is one validation result. Code is stable, Message is for humans.
type Finding struct {
	Code    string
	Message string
	Line    int
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", f.Line, f.Code, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

const (
	FindingManifestMissing     = "manifest-missing"
	FindingWorkdirInconsistent = "workdir-inconsistent"
	FindingPortMismatch        = "port-mismatch"
	FindingNoStartup           = "no-startup"
)
