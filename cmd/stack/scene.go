package main

import (
	"fmt"

	stack "github.com/grindlemire/go-stack"
	"github.com/grindlemire/go-stack/internal/scene"
)

// loadScene loads and builds the scene at path.
func loadScene(path string) (*scene.Document, *stack.Node, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	root, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return doc, root, nil
}

// sizeFlags are the -w and -h flags shared by layout and draw.
// Negative means unset.
type sizeFlags struct {
	width  int
	height int
}

// apply overrides w and h with any flags that were set.
func (f sizeFlags) apply(w, h int) (int, int) {
	if f.width >= 0 {
		w = f.width
	}
	if f.height >= 0 {
		h = f.height
	}
	return w, h
}
