package json

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var customJSON = NewJSON()

func Marshal(obj interface{}) ([]byte, error) {
	return customJSON.Marshal(obj)
}

func Unmarshal(data []byte, obj interface{}) error {
	return customJSON.Unmarshal(data, obj)
}

func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return customJSON.iter.NewEncoder(w)
}

type JSON struct {
	iter jsoniter.API
}

func NewJSON() *JSON {
	return &JSON{
		iter: jsoniter.ConfigCompatibleWithStandardLibrary,
	}
}

func (j *JSON) Unmarshal(data []byte, obj interface{}) error {
	return j.iter.Unmarshal(data, obj)
}

func (j *JSON) Marshal(obj interface{}) ([]byte, error) {
	return j.iter.Marshal(obj)
}
