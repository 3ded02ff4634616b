package tool

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gowebpki/jcs"
	"github.com/kaptinlin/jsonschema"
)

func NewRegistry() *Registry {
	return &Registry{
		compiler: jsonschema.NewCompiler(),
		tools:    map[string]*entry{},
	}
}

type Registry struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	tools    map[string]*entry
	order    []string
}

type entry struct {
	tool   Tool
	schema *jsonschema.Schema
}

// Register compiles the tool's input schema and adds it to the catalog.
// Registration order is preserved for List.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q has no handler", t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[t.Name]; ok {
		return fmt.Errorf("tool %q already registered", t.Name)
	}

	schema, err := r.compiler.Compile(t.InputSchema)
	if err != nil {
		return fmt.Errorf("compile schema for tool %q: %w", t.Name, err)
	}

	r.tools[t.Name] = &entry{tool: t, schema: schema}
	r.order = append(r.order, t.Name)
	return nil
}

func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		e := r.tools[name]
		out = append(out, Descriptor{
			Name:        e.tool.Name,
			Description: e.tool.Description,
			InputSchema: e.tool.InputSchema,
		})
	}
	return out
}

// Call validates args against the tool's schema and dispatches. A schema
// violation yields *ArgumentError; anything the handler returns is passed
// through untouched.
func (r *Registry) Call(name string, args Args) (any, error) {
	r.mu.RLock()
	e, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}

	if args == nil {
		args = Args{}
	}

	encoded, err := json.Marshal(args)
	if err != nil {
		return nil, &ArgumentError{Tool: name, Reason: err.Error()}
	}
	result := e.schema.ValidateJSON(encoded)
	if !result.IsValid() {
		return nil, &ArgumentError{Tool: name, Reason: fmt.Sprintf("%v", result.Errors)}
	}

	return e.tool.Handler(args)
}

// Digest returns a sha256 hex digest over the RFC 8785 canonical form of the
// tool catalog. Stable across processes for an identical catalog.
func (r *Registry) Digest() (string, error) {
	encoded, err := json.Marshal(r.List())
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(encoded)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
