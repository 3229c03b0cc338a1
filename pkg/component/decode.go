package component

import (
	"github.com/mitchellh/mapstructure"
)

// DecodeProps decodes a props or fields map into out, a pointer to a struct.
// Fields are matched by their "prop" tag, falling back to the field name;
// numeric strings are converted.
func DecodeProps(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "prop",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
