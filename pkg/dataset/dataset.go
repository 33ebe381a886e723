package dataset

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
	"go.uber.org/multierr"

	"github.com/c9s/outliers/pkg/outlier"
	"github.com/c9s/outliers/pkg/util"
)

// Stdin is the dataset name that refers to the standard input.
const Stdin = "-"

var log = logrus.WithField("component", "dataset")

var (
	// ErrInvalidNumber is returned for plain text tokens that are not numbers.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrKeyRequiresJSON is returned when a field key is given for plain text input.
	ErrKeyRequiresJSON = errors.New("a field key can only be used with JSON input")
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks . Source
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// FileSource opens datasets from the file system, Stdin reads from In.
type FileSource struct {
	In io.Reader
}

func (s *FileSource) Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		in := s.In
		if in == nil {
			in = os.Stdin
		}
		return io.NopCloser(in), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Dataset is one numeric sequence loaded from a source.
type Dataset struct {
	Name   string
	Format Format

	// Values holds the numbers outliers are computed on, in input order.
	Values []float64

	// Records holds the JSON array elements Values were extracted from,
	// it is empty for plain text input.
	Records []*fastjson.Value

	// Key is the record field Values were extracted from.
	Key string
}

func (d *Dataset) IsJSON() bool {
	return d.Format == FormatJSON
}

// Extractor returns how Values were extracted from Records.
func (d *Dataset) Extractor() outlier.Extractor[*fastjson.Value, float64] {
	if d.Key != "" {
		return outlier.JSONField(d.Key)
	}
	return outlier.JSONNumber()
}

type Loader struct {
	Source Source

	// Key selects the numeric field of JSON object records.
	Key string
}

func NewLoader(source Source, key string) *Loader {
	return &Loader{Source: source, Key: key}
}

func (l *Loader) Load(name string) (*Dataset, error) {
	rc, err := l.Source.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open dataset %s", name)
	}
	defer func() {
		util.LogErr(log, rc.Close(), "failed to close dataset %s", name)
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read dataset %s", name)
	}

	ds, err := Parse(name, data, l.Key)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded dataset %s: %d values", name, len(ds.Values))
	return ds, nil
}

// Parse decodes data as a JSON array when it starts with '[',
// otherwise as whitespace separated numbers with '#' line comments.
func Parse(name string, data []byte, key string) (*Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return parseJSON(name, trimmed, key)
	}

	if key != "" {
		return nil, errors.Wrapf(ErrKeyRequiresJSON, "dataset %s", name)
	}

	return parseText(name, data)
}

func parseJSON(name string, data []byte, key string) (*Dataset, error) {
	doc, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse dataset %s", name)
	}

	records, err := doc.Array()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", name)
	}

	ds := &Dataset{
		Name:    name,
		Format:  FormatJSON,
		Key:     key,
		Records: records,
		Values:  make([]float64, 0, len(records)),
	}

	extract := ds.Extractor()

	var errs error
	for i, record := range records {
		v, err := extract(record)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%s: element %d", name, i))
			continue
		}
		ds.Values = append(ds.Values, v)
	}

	if errs != nil {
		return nil, errs
	}

	return ds, nil
}

func parseText(name string, data []byte) (*Dataset, error) {
	ds := &Dataset{Name: name, Format: FormatText}

	var errs error
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(ErrInvalidNumber, "%s:%d: %q", name, lineNo, field))
				continue
			}
			ds.Values = append(ds.Values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, errors.Wrapf(err, "failed to scan dataset %s", name))
	}

	if errs != nil {
		return nil, errs
	}

	return ds, nil
}
