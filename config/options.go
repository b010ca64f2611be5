package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

const (
	TriangulatorFan     = "fan"
	TriangulatorEarClip = "earclip"
)

// Options tune document loading and the typed object helpers.
type Options struct {
	// Encoding names the charmap used for strings that are not valid UTF-8.
	Encoding string `yaml:"encoding"`
	// NativeTypes maps an object node name (Model, Geometry, ...) to the
	// property template native type used by typed helpers.
	NativeTypes map[string]string `yaml:"native_types"`
	// Triangulator is the default polygon triangulation policy.
	Triangulator string `yaml:"triangulator"`
}

var defaultNativeTypes = map[string]string{
	"Model":       "FbxNode",
	"Geometry":    "FbxMesh",
	"Deformer":    "FbxSkin",
	"SubDeformer": "FbxCluster",
	"Material":    "FbxSurfacePhong",
	"Texture":     "FbxFileTexture",
	"Video":       "FbxVideo",
}

func DefaultOptions() Options {
	nt := make(map[string]string, len(defaultNativeTypes))
	for k, v := range defaultNativeTypes {
		nt[k] = v
	}
	return Options{
		Encoding:     DefaultEncoding,
		NativeTypes:  nt,
		Triangulator: TriangulatorFan,
	}
}

// ParseOptions reads YAML on top of DefaultOptions. Native types given in
// the document are merged into the defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	var parsed Options
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return opts, errors.Wrapf(err, "Failed to parse options")
	}
	if parsed.Encoding != "" {
		opts.Encoding = parsed.Encoding
	}
	if parsed.Triangulator != "" {
		opts.Triangulator = parsed.Triangulator
	}
	for k, v := range parsed.NativeTypes {
		opts.NativeTypes[k] = v
	}
	return opts, opts.Validate()
}

func LoadOptions(path string) (Options, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return DefaultOptions(), errors.Wrapf(err, "Cannot read options file %q", path)
	}
	return ParseOptions(data)
}

func (o Options) Validate() error {
	if _, err := FindEncoding(o.Encoding); err != nil {
		return err
	}
	switch o.Triangulator {
	case TriangulatorFan, TriangulatorEarClip:
	default:
		return errors.Errorf("Unknown triangulator %q", o.Triangulator)
	}
	return nil
}

func (o Options) Charmap() (*charmap.Charmap, error) {
	return FindEncoding(o.Encoding)
}

// NativeType returns the native type configured for an object node name,
// or "" when none is known.
func (o Options) NativeType(nodeName string) string {
	if nt, ok := o.NativeTypes[nodeName]; ok {
		return nt
	}
	return defaultNativeTypes[nodeName]
}

func (o Options) Marshal() ([]byte, error) {
	return yaml.Marshal(o)
}
