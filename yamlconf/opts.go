package yamlconf

import (
	"github.com/confmix/confmix/construct"
	"github.com/confmix/confmix/fsx"
	"github.com/confmix/confmix/template"
)

type loadOpts struct {
	mode           construct.Mode
	includeBase    string
	includeFS      fsx.FileSystem
	enableInclude  bool
	enableEnv      bool
	resolveStrings bool
	resolveKeys    bool
	engine         template.Engine
	resolveInherit bool
	sourceDir      string

	// active is the chain of files currently being resolved, used to detect
	// inheritance cycles.
	active []string
}

func newLoadOpts(opts []Option) *loadOpts {
	o := &loadOpts{
		enableInclude: true,
		enableEnv:     true,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *loadOpts) clone() *loadOpts {
	oc := *o
	return &oc
}

type Option func(*loadOpts)

// LoadMode selects the safety mode (default ModeUnsafe).
func LoadMode(m construct.Mode) Option {
	return func(o *loadOpts) { o.mode = m }
}

// IncludeBase sets the base path that !include references resolve against.
func IncludeBase(path string) Option {
	return func(o *loadOpts) { o.includeBase = path }
}

// IncludeFilesystem sets the filesystem !include references read from,
// overriding IncludeBase.
func IncludeFilesystem(fs fsx.FileSystem) Option {
	return func(o *loadOpts) { o.includeFS = fs }
}

// EnableInclude toggles the !include tag (default true).
func EnableInclude(v bool) Option {
	return func(o *loadOpts) { o.enableInclude = v }
}

// EnableEnv toggles the !ENV tag (default true).
func EnableEnv(v bool) Option {
	return func(o *loadOpts) { o.enableEnv = v }
}

// ResolveStrings enables template rendering of scalar strings through the
// engine set with Engine.
func ResolveStrings(v bool) Option {
	return func(o *loadOpts) { o.resolveStrings = v }
}

// ResolveKeys enables template rendering of string mapping keys.
func ResolveKeys(v bool) Option {
	return func(o *loadOpts) { o.resolveKeys = v }
}

// Engine sets the template engine used by ResolveStrings and ResolveKeys.
func Engine(e template.Engine) Option {
	return func(o *loadOpts) { o.engine = e }
}

// ResolveInherit enables INHERIT directive resolution. Resolution needs a
// source directory: LoadFile supplies the file's own directory, string loads
// may supply one with SourceDir. Without one the document is returned as
// parsed, INHERIT key included.
func ResolveInherit(v bool) Option {
	return func(o *loadOpts) { o.resolveInherit = v }
}

// SourceDir supplies the directory relative parent references resolve
// against when loading from a string.
func SourceDir(dir string) Option {
	return func(o *loadOpts) { o.sourceDir = dir }
}
