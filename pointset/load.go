package pointset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jbeda/geom"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty indicates a stream without any point set.
	ErrEmpty = errors.New("pointset: no point sets found")

	// ErrBadPoint indicates a point that is not a pair of numbers.
	ErrBadPoint = errors.New("pointset: a point must be a sequence of two numbers")

	// ErrBadDocument indicates a document that is neither a set nor a list of sets.
	ErrBadDocument = errors.New("pointset: document must be a set or a list of sets")
)

// setDoc is the on-disk form of a Set.
type setDoc struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points,flow"`
}

// Load decodes every YAML document in r. Each document holds one set or a
// list of sets. Sets without a name are called "#<k>", k counting from 0
// across the whole stream.
func Load(r io.Reader) ([]Set, error) {
	var (
		dec  = yaml.NewDecoder(r)
		sets []Set
	)
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pointset: %w", err)
		}

		docs, err := decodeDocument(&node)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			s, err := d.toSet(len(sets))
			if err != nil {
				return nil, err
			}
			sets = append(sets, s)
		}
	}
	if len(sets) == 0 {
		return nil, ErrEmpty
	}

	return sets, nil
}

// LoadFile is Load on the named file. Unnamed sets are called
// "<base>#<k>" where base is the file name.
func LoadFile(path string) ([]Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sets, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	for i := range sets {
		if sets[i].Name == fmt.Sprintf("#%d", i) {
			sets[i].Name = base + sets[i].Name
		}
	}

	return sets, nil
}

func decodeDocument(node *yaml.Node) ([]setDoc, error) {
	root := node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.MappingNode:
		var d setDoc
		if err := root.Decode(&d); err != nil {
			return nil, fmt.Errorf("pointset: line %d: %w", root.Line, err)
		}
		return []setDoc{d}, nil
	case yaml.SequenceNode:
		var ds []setDoc
		if err := root.Decode(&ds); err != nil {
			return nil, fmt.Errorf("pointset: line %d: %w", root.Line, err)
		}
		return ds, nil
	default:
		return nil, fmt.Errorf("%w (line %d)", ErrBadDocument, root.Line)
	}
}

func (d setDoc) toSet(k int) (Set, error) {
	s := Set{Name: d.Name, Points: make([]geom.Coord, len(d.Points))}
	if s.Name == "" {
		s.Name = fmt.Sprintf("#%d", k)
	}
	for i, p := range d.Points {
		if len(p) != 2 {
			return Set{}, fmt.Errorf("set %q point %d: %w", s.Name, i, ErrBadPoint)
		}
		s.Points[i] = geom.Coord{X: p[0], Y: p[1]}
	}

	return s, nil
}

// Encode writes sets to w as a single YAML document holding a list of sets.
func Encode(w io.Writer, sets []Set) error {
	docs := make([]setDoc, len(sets))
	for i, s := range sets {
		docs[i].Name = s.Name
		docs[i].Points = make([][]float64, len(s.Points))
		for j, p := range s.Points {
			docs[i].Points[j] = []float64{p.X, p.Y}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("pointset: %w", err)
	}

	return enc.Close()
}
