package models

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

//go:embed worlds/campus.yaml
var campusWorld []byte

// worldFile is the on-disk shape of a world definition:
//
//	start: outside
//	rooms:
//	  outside:
//	    description: outside the main entrance of the university
//	    exits:
//	      east: theater
//	    items:
//	      - name: Enchanted Ring
//	        description: A mysterious ring with a glow to it
//	        weight: 0.5
type worldFile struct {
	Start RoomID    `yaml:"start"`
	Rooms roomSpecs `yaml:"rooms"`
}

type roomSpec struct {
	ID          RoomID    `yaml:"-"`
	Description string    `yaml:"description"`
	Exits       exitSpecs `yaml:"exits"`
	Items       []Item    `yaml:"items"`
}

type exitSpec struct {
	Direction string
	Room      RoomID
}

// roomSpecs and exitSpecs decode YAML mappings while keeping key order, which
// plain Go maps would lose.
type roomSpecs []roomSpec

type exitSpecs []exitSpec

func (rs *roomSpecs) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrdered(node, func(key string, value *yaml.Node) error {
		var spec roomSpec
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("room %s: %w", key, err)
		}
		spec.ID = RoomID(key)
		*rs = append(*rs, spec)
		return nil
	})
}

func (es *exitSpecs) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrdered(node, func(key string, value *yaml.Node) error {
		var to RoomID
		if err := value.Decode(&to); err != nil {
			return fmt.Errorf("exit %s: %w", key, err)
		}
		*es = append(*es, exitSpec{Direction: key, Room: to})
		return nil
	})
}

func decodeOrdered(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
		if err := fn(key, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// ParseWorld builds and validates a World from its YAML definition.
func ParseWorld(data []byte) (*World, error) {
	var wf worldFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parsing world: %w", err)
	}

	w := NewWorld()
	el := errors.NewErrorList()

	// Rooms first so exits may point forward.
	for _, spec := range wf.Rooms {
		if _, err := w.AddRoom(spec.ID, spec.Description); err != nil {
			el.Add(err)
		}
	}
	for _, spec := range wf.Rooms {
		for _, exit := range spec.Exits {
			el.Add(w.Connect(spec.ID, exit.Direction, exit.Room))
		}
		room := w.Room(spec.ID)
		for _, item := range spec.Items {
			room.AddItem(item)
		}
	}
	if wf.Start != "" {
		el.Add(w.SetStart(wf.Start))
	}
	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

// LoadWorld reads a world definition from a YAML file.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWorld(data)
}

// DefaultWorld returns a fresh copy of the built-in university campus.
func DefaultWorld() (*World, error) {
	return ParseWorld(campusWorld)
}
