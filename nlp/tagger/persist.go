package tagger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"aptag/alg/perceptron"
)

// Serialization is the JSON document a trained tagger is saved as
type Serialization struct {
	Model   *perceptron.Serialized `json:"model"`
	TagDict map[string]string      `json:"tagdict"`
}

// PersistError reports a failure to save or load a model file
type PersistError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s model %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (t *Tagger) Serialize() *Serialization {
	data := &Serialization{
		Model:   t.Model.Serialize(),
		TagDict: make(map[string]string),
	}
	if t.Dict != nil {
		for word, tag := range t.Dict.Tags {
			data.TagDict[word] = tag
		}
	}
	return data
}

func Deserialize(data *Serialization) (*Tagger, error) {
	if data.Model == nil {
		return nil, fmt.Errorf("model document has no weights")
	}
	t := NewTagger(&TagDictionary{Tags: data.TagDict})
	if t.Dict.Tags == nil {
		t.Dict.Tags = make(map[string]string)
	}
	t.Model.Deserialize(data.Model)
	return t, nil
}

func (t *Tagger) Write(writer io.Writer) error {
	return json.NewEncoder(writer).Encode(t.Serialize())
}

func Read(reader io.Reader) (*Tagger, error) {
	data := &Serialization{}
	if err := json.NewDecoder(reader).Decode(data); err != nil {
		return nil, err
	}
	return Deserialize(data)
}

func WriteFile(filename string, t *Tagger) error {
	file, err := os.Create(filename)
	if err != nil {
		return &PersistError{"write", filename, err}
	}
	if err := t.Write(file); err != nil {
		file.Close()
		return &PersistError{"write", filename, err}
	}
	if err := file.Close(); err != nil {
		return &PersistError{"write", filename, err}
	}
	return nil
}

func ReadFile(filename string) (*Tagger, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &PersistError{"read", filename, err}
	}
	defer file.Close()

	t, err := Read(file)
	if err != nil {
		return nil, &PersistError{"read", filename, err}
	}
	return t, nil
}
