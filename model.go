package emotion

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// MaxVocabularySize is the largest feature space the artifact contract
// allows.
const MaxVocabularySize = 3000

var (
	// ErrModelUnavailable reports that the trained artifact could not be
	// read at all. Fatal at startup; inference cannot proceed without it.
	ErrModelUnavailable = errors.New("emotion: model artifact unavailable")

	// ErrMalformedModel reports an artifact that loaded but whose pieces
	// disagree (vocabulary size, class cardinality, index ranges).
	ErrMalformedModel = errors.New("emotion: malformed model artifact")
)

// A Model holds the trained artifact: the n-gram vocabulary, the
// document-frequency statistics behind the IDF weights, and the naive Bayes
// parameters. A Model is immutable after construction and shared read-only
// by every inference call.
type Model struct {
	Name string

	vocabulary  map[string]int
	docFreq     []int
	totalDocs   int
	labels      []Emotion
	logPriors   []float64
	likelihoods *mat.Dense // one row per class, one column per feature

	idf []float64 // derived from docFreq at construction
}

// ModelParams is the raw content of a trained artifact, used to construct a
// Model directly or via the gob files on disk.
type ModelParams struct {
	Vocabulary     map[string]int // n-gram -> feature index in [0, V)
	DocFreq        []int          // per-index training document frequency
	TotalDocs      int            // training document count
	Classes        []string       // label order used by priors/likelihoods
	LogPriors      []float64      // one per class
	LogLikelihoods [][]float64    // classes x V
}

// ModelFromParams validates params and builds a Model from them.
func ModelFromParams(name string, params ModelParams) (*Model, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	dim := len(params.Vocabulary)
	labels := make([]Emotion, len(params.Classes))
	for i, class := range params.Classes {
		labels[i] = Emotion(class)
	}

	flat := make([]float64, 0, len(params.Classes)*dim)
	for _, row := range params.LogLikelihoods {
		flat = append(flat, row...)
	}

	// Reconstruct the smoothed IDF weights baked into the trained
	// vectorizer: log((1+N)/(1+df)) + 1.
	idf := make([]float64, dim)
	for i, df := range params.DocFreq {
		idf[i] = math.Log(float64(1+params.TotalDocs)/float64(1+df)) + 1
	}

	return &Model{
		Name:        name,
		vocabulary:  params.Vocabulary,
		docFreq:     params.DocFreq,
		totalDocs:   params.TotalDocs,
		labels:      labels,
		logPriors:   params.LogPriors,
		likelihoods: mat.NewDense(len(params.Classes), dim, flat),
		idf:         idf,
	}, nil
}

// ModelFromDisk loads a Model from a directory of gob files.
func ModelFromDisk(path string) (*Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return ModelFromFS(filepath.Base(path), os.DirFS(path))
}

// ModelFromFS loads a Model from the root of filesys.
func ModelFromFS(name string, filesys fs.FS) (*Model, error) {
	var params ModelParams
	var freq docFrequency

	pieces := []struct {
		file string
		dst  any
	}{
		{"vocabulary.gob", &params.Vocabulary},
		{"docfreq.gob", &freq},
		{"classes.gob", &params.Classes},
		{"priors.gob", &params.LogPriors},
		{"likelihoods.gob", &params.LogLikelihoods},
	}
	for _, piece := range pieces {
		if err := decodeAsset(filesys, piece.file, piece.dst); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrModelUnavailable, piece.file, err)
		}
	}
	params.DocFreq = freq.Counts
	params.TotalDocs = freq.TotalDocs

	return ModelFromParams(name, params)
}

// Write saves the Model as a directory of gob files that ModelFromDisk can
// load back.
func (m *Model) Write(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return err
	}

	likelihoods := make([][]float64, len(m.labels))
	for i := range m.labels {
		likelihoods[i] = m.likelihoods.RawRowView(i)
	}

	pieces := []struct {
		file string
		src  any
	}{
		{"vocabulary.gob", m.vocabulary},
		{"docfreq.gob", docFrequency{Counts: m.docFreq, TotalDocs: m.totalDocs}},
		{"classes.gob", classStrings(m.labels)},
		{"priors.gob", m.logPriors},
		{"likelihoods.gob", likelihoods},
	}
	for _, piece := range pieces {
		if err := encodeAsset(filepath.Join(path, piece.file), piece.src); err != nil {
			return err
		}
	}
	return nil
}

// Labels returns the model's class order.
func (m *Model) Labels() []Emotion {
	out := make([]Emotion, len(m.labels))
	copy(out, m.labels)
	return out
}

// VocabularySize returns the dimensionality of the feature space.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// docFrequency is the on-disk shape of the document-frequency statistics.
type docFrequency struct {
	Counts    []int
	TotalDocs int
}

func (p ModelParams) validate() error {
	dim := len(p.Vocabulary)
	if dim == 0 {
		return fmt.Errorf("%w: empty vocabulary", ErrMalformedModel)
	}
	if dim > MaxVocabularySize {
		return fmt.Errorf("%w: vocabulary size %d exceeds %d", ErrMalformedModel, dim, MaxVocabularySize)
	}

	// Indices must be a bijection onto [0, V).
	seen := make([]bool, dim)
	for gram, idx := range p.Vocabulary {
		if idx < 0 || idx >= dim {
			return fmt.Errorf("%w: index %d for %q outside [0, %d)", ErrMalformedModel, idx, gram, dim)
		}
		if seen[idx] {
			return fmt.Errorf("%w: duplicate feature index %d", ErrMalformedModel, idx)
		}
		seen[idx] = true
	}

	if len(p.DocFreq) != dim {
		return fmt.Errorf("%w: %d document frequencies for %d features", ErrMalformedModel, len(p.DocFreq), dim)
	}
	if p.TotalDocs <= 0 {
		return fmt.Errorf("%w: non-positive training document count %d", ErrMalformedModel, p.TotalDocs)
	}
	for i, df := range p.DocFreq {
		if df < 0 {
			return fmt.Errorf("%w: negative document frequency at index %d", ErrMalformedModel, i)
		}
	}

	if len(p.Classes) != len(Emotions) {
		return fmt.Errorf("%w: %d classes, want %d", ErrMalformedModel, len(p.Classes), len(Emotions))
	}
	found := make(map[Emotion]bool, len(p.Classes))
	for _, class := range p.Classes {
		label := Emotion(class)
		if !label.Known() {
			return fmt.Errorf("%w: unknown class %q", ErrMalformedModel, class)
		}
		if found[label] {
			return fmt.Errorf("%w: duplicate class %q", ErrMalformedModel, class)
		}
		found[label] = true
	}

	if len(p.LogPriors) != len(p.Classes) {
		return fmt.Errorf("%w: %d priors for %d classes", ErrMalformedModel, len(p.LogPriors), len(p.Classes))
	}
	if len(p.LogLikelihoods) != len(p.Classes) {
		return fmt.Errorf("%w: %d likelihood rows for %d classes", ErrMalformedModel, len(p.LogLikelihoods), len(p.Classes))
	}
	for i, row := range p.LogLikelihoods {
		if len(row) != dim {
			return fmt.Errorf("%w: likelihood row %d has %d entries, want %d", ErrMalformedModel, i, len(row), dim)
		}
	}
	return nil
}

func classStrings(labels []Emotion) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = string(label)
	}
	return out
}

func decodeAsset(filesys fs.FS, name string, dst any) error {
	file, err := filesys.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewDecoder(file).Decode(dst)
}

func encodeAsset(path string, src any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = gob.NewEncoder(file).Encode(src)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
