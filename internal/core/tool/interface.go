package tool

type RegistryHandler interface {
	Register(t Tool) error
	List() []Descriptor
	Call(name string, args Args) (any, error)
	Digest() (string, error)
}
