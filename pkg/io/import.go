package io

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/errors"
)

type payload struct {
	States *[]data.Record `json:"states"`
}

// ReadJSON decodes a dataset from r. It does not close r.
func ReadJSON(r io.Reader) (*data.Dataset, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode dataset")
	}
	if p.States == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset has no \"states\" array")
	}
	for i, rec := range *p.States {
		if strings.TrimSpace(rec.State) == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "record %d has no state name", i)
		}
	}
	return &data.Dataset{States: *p.States}, nil
}

// ImportJSON reads the dataset file at path.
func ImportJSON(path string) (*data.Dataset, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "path cannot be empty")
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	ds, err := ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return ds, nil
}
