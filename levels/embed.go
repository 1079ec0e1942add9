package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.xml
var LevelsFS embed.FS

const emptyLevelName = "empty_level.xml"

// LoadTemplateFromFS parses a level template from fsys.
func LoadTemplateFromFS(fsys fs.FS, name string) (*Node, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read template %s: %w", name, err)
	}
	root, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse template %s: %w", name, err)
	}
	return root, nil
}
