package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/pkasting/wuffs/base16"
	"github.com/pkasting/wuffs/base64"
	"github.com/pkasting/wuffs/errors"
	"github.com/pkasting/wuffs/number"
	"github.com/pkasting/wuffs/transform"
)

const (
	opBase16Encode  = "base16-encode"
	opBase16Decode  = "base16-decode"
	opBase16Encode4 = "base16-encode4"
	opBase16Decode4 = "base16-decode4"
	opBase64Encode  = "base64-encode"
	opBase64Decode  = "base64-decode"
	opParseU64      = "parse-u64"
	opParseI64      = "parse-i64"
	opParseF64      = "parse-f64"
	opRenderF64     = "render-f64"
	opUTF8Check     = "utf8-check"
)

var allOps = []string{
	opBase16Encode, opBase16Decode, opBase16Encode4, opBase16Decode4,
	opBase64Encode, opBase64Decode,
	opParseU64, opParseI64, opParseF64, opRenderF64,
	opUTF8Check,
}

// validate is shared; building a validator is expensive.
var validate = validator.New()

// Job is one CLI invocation, loaded from a YAML file and/or flags.
type Job struct {
	Op           string `yaml:"op" json:"op" validate:"required,oneof=base16-encode base16-decode base16-encode4 base16-decode4 base64-encode base64-decode parse-u64 parse-i64 parse-f64 render-f64 utf8-check" jsonschema:"enum=base16-encode,enum=base16-decode,enum=base16-encode4,enum=base16-decode4,enum=base64-encode,enum=base64-decode,enum=parse-u64,enum=parse-i64,enum=parse-f64,enum=render-f64,enum=utf8-check,description=Operation to run"`
	URLAlphabet  bool   `yaml:"url_alphabet" json:"url_alphabet,omitempty" jsonschema:"description=Use the URL-safe base64 alphabet"`
	Padding      bool   `yaml:"padding" json:"padding,omitempty" jsonschema:"description=Emit and accept base64 padding"`
	BufferSize   int    `yaml:"buffer_size" json:"buffer_size,omitempty" validate:"omitempty,min=4,max=16777216" jsonschema:"minimum=4,maximum=16777216,description=Stream buffer size in bytes"`
	Notation     string `yaml:"notation" json:"notation,omitempty" validate:"omitempty,oneof=adaptive exponent-absent exponent-present" jsonschema:"enum=adaptive,enum=exponent-absent,enum=exponent-present"`
	Precision    int    `yaml:"precision" json:"precision" validate:"min=-1,max=4095" jsonschema:"minimum=-1,maximum=4095,description=Digits after the separator; -1 renders just enough digits to round-trip"`
	LeadingPlus  bool   `yaml:"leading_plus" json:"leading_plus,omitempty"`
	DecimalComma bool   `yaml:"decimal_comma" json:"decimal_comma,omitempty"`
	Verbose      bool   `yaml:"verbose" json:"verbose,omitempty"`
}

func defaultJob() *Job {
	return &Job{
		BufferSize: transform.DefaultBufferSize,
		Notation:   "adaptive",
		Precision:  -1,
	}
}

// loadJob reads a YAML job file over the defaults.
func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "read job file")
	}
	job := defaultJob()
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse job file")
	}
	return job, nil
}

func (j *Job) validate() error {
	if err := validate.Struct(j); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "job validation failed")
	}
	return nil
}

// jobSchema returns the JSON Schema of the job file.
func jobSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Job{})

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return b, nil
}

func (j *Job) notation() number.Notation {
	switch j.Notation {
	case "exponent-absent":
		return number.NotationExponentAbsent
	case "exponent-present":
		return number.NotationExponentPresent
	default:
		return number.NotationAdaptive
	}
}

func (j *Job) renderOptions() number.RenderOptions {
	return number.RenderOptions{
		LeadingPlus:  j.LeadingPlus,
		DecimalComma: j.DecimalComma,
		Notation:     j.notation(),
		Precision:    max(j.Precision, 0),
		JustEnough:   j.Precision < 0,
	}
}

// transformer returns the byte transform for a transcoding op, or nil.
func (j *Job) transformer() transform.Transformer {
	opts := base64.Options{
		AllowPadding: j.Padding,
		EmitPadding:  j.Padding,
		URLAlphabet:  j.URLAlphabet,
	}
	switch j.Op {
	case opBase16Encode:
		return base16.Encoder2
	case opBase16Decode:
		return base16.Decoder2
	case opBase16Encode4:
		return base16.Encoder4
	case opBase16Decode4:
		return base16.Decoder4
	case opBase64Encode:
		return opts.Encoder()
	case opBase64Decode:
		return opts.Decoder()
	}
	return nil
}
