// Package roadmap holds the platform delivery checklist and renders it as
// Notion blocks.
package roadmap

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed roadmap.yaml
var defaultRoadmap []byte

// Roadmap is a titled checklist grouped into phases.
type Roadmap struct {
	Title  string  `yaml:"title"`
	Vision string  `yaml:"vision"`
	Phases []Phase `yaml:"phases"`
}

type Phase struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type Item struct {
	Text    string `yaml:"text"`
	Checked bool   `yaml:"checked"`
}

// Default returns the embedded roadmap.
func Default() (*Roadmap, error) {
	return Parse(defaultRoadmap)
}

// Parse decodes a YAML roadmap and rejects documents without a title or phases.
func Parse(data []byte) (*Roadmap, error) {
	var r Roadmap
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roadmap: %w", err)
	}

	if r.Title == "" {
		return nil, errors.New("roadmap title is required")
	}
	if len(r.Phases) == 0 {
		return nil, errors.New("roadmap has no phases")
	}
	for i, p := range r.Phases {
		if p.Title == "" {
			return nil, fmt.Errorf("phase %d: title is required", i+1)
		}
	}

	return &r, nil
}

// Progress reports how many items are checked across all phases.
func (r *Roadmap) Progress() (done, total int) {
	for _, p := range r.Phases {
		for _, it := range p.Items {
			total++
			if it.Checked {
				done++
			}
		}
	}
	return done, total
}

// Blocks renders the roadmap as a heading, the vision paragraph, and one
// heading_2 plus to_do list per phase.
func (r *Roadmap) Blocks() []Block {
	blocks := []Block{heading1(r.Title)}
	if r.Vision != "" {
		blocks = append(blocks, paragraph("Vision: "+r.Vision))
	}

	for _, p := range r.Phases {
		blocks = append(blocks, heading2(p.Title))
		for _, it := range p.Items {
			blocks = append(blocks, todo(it.Text, it.Checked))
		}
	}

	return blocks
}
