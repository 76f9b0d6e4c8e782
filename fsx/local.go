package fsx

import (
	"os"
	"path/filepath"
)

// Local reads from the host filesystem. Relative names resolve against Root,
// or against the process working directory when Root is empty.
type Local struct {
	Root string
}

func NewLocal(root string) *Local {
	return &Local{Root: root}
}

func (l *Local) ReadFile(name string) ([]byte, error) {
	if l.Root != "" && !filepath.IsAbs(name) {
		name = filepath.Join(l.Root, name)
	}
	return os.ReadFile(name)
}
