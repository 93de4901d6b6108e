package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/histogram"
	"github.com/ornl-ndav/ISAW-sub008/internal/collision"
	"github.com/ornl-ndav/ISAW-sub008/scale"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

// scaleDoc describes a scale either by explicit points or by one generator.
type scaleDoc struct {
	Points  []float64   `yaml:"points,omitempty"`
	Uniform *uniformDoc `yaml:"uniform,omitempty"`
	Log     *logDoc     `yaml:"log,omitempty"`
}

type uniformDoc struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Count int     `yaml:"count"`
}

type logDoc struct {
	Start     float64 `yaml:"start"`
	End       float64 `yaml:"end"`
	FirstStep float64 `yaml:"first_step"`
	Mode      string  `yaml:"mode,omitempty"`
}

func (d *scaleDoc) build() (*scale.Scale, error) {
	set := 0
	if d.Points != nil {
		set++
	}
	if d.Uniform != nil {
		set++
	}
	if d.Log != nil {
		set++
	}
	if set != 1 {
		return nil, errors.New("scale needs exactly one of points, uniform or log")
	}

	switch {
	case d.Uniform != nil:
		return scale.Uniform(d.Uniform.Start, d.Uniform.End, d.Uniform.Count)
	case d.Log != nil:
		mode, err := scale.ParseLogMode(d.Log.Mode)
		if err != nil {
			return nil, err
		}

		return scale.Log(d.Log.Start, d.Log.End, d.Log.FirstStep, mode)
	default:
		return scale.FromPoints(d.Points)
	}
}

// attributeDoc is one named attribute. Value is decoded according to Kind.
type attributeDoc struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	Value yaml.Node `yaml:"value"`
}

type detectorDoc struct {
	ID       int32   `yaml:"id"`
	TwoTheta float64 `yaml:"two_theta"`
	Azimuth  float64 `yaml:"azimuth"`
	Distance float64 `yaml:"distance"`
}

type orientationDoc struct {
	Phi   float64 `yaml:"phi"`
	Chi   float64 `yaml:"chi"`
	Omega float64 `yaml:"omega"`
}

func (d *attributeDoc) build() (attr.Attribute, error) {
	if d.Name == "" {
		return attr.Attribute{}, errors.New("attribute without name")
	}

	var err error
	switch kind := attr.ParseKind(d.Kind); kind {
	case attr.KindInt:
		var v int32
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewInt(d.Name, v), nil
		}
	case attr.KindFloat:
		var v float32
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewFloat(d.Name, v), nil
		}
	case attr.KindDouble:
		var v float64
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewDouble(d.Name, v), nil
		}
	case attr.KindString, attr.KindLabel:
		var v string
		if err = d.Value.Decode(&v); err == nil {
			if kind == attr.KindLabel {
				return attr.NewLabel(d.Name, v), nil
			}

			return attr.NewString(d.Name, v), nil
		}
	case attr.KindIntList:
		var v []int32
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewIntList(d.Name, v), nil
		}
	case attr.KindDetector:
		var v detectorDoc
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewDetector(d.Name, attr.DetectorInfo(v)), nil
		}
	case attr.KindOrientation:
		var v orientationDoc
		if err = d.Value.Decode(&v); err == nil {
			return attr.NewOrientation(d.Name, attr.Orientation(v)), nil
		}
	case attr.KindInvalid:
		return attr.Attribute{}, fmt.Errorf("attribute %q: unknown kind %q", d.Name, d.Kind)
	default:
		return attr.Attribute{}, fmt.Errorf("attribute %q: unknown kind %q", d.Name, d.Kind)
	}

	return attr.Attribute{}, fmt.Errorf("attribute %q: %w", d.Name, err)
}

func newAttributeDoc(a attr.Attribute) (attributeDoc, error) {
	doc := attributeDoc{Name: a.Name(), Kind: a.Kind().String()}

	v := a.Value()
	switch a.Kind() {
	case attr.KindDetector:
		d, _ := a.Detector()
		v = detectorDoc(d)
	case attr.KindOrientation:
		o, _ := a.Orientation()
		v = orientationDoc(o)
	default:
	}

	if err := doc.Value.Encode(v); err != nil {
		return attributeDoc{}, err
	}

	return doc, nil
}

// seriesDoc is the YAML form of a sampled series.
type seriesDoc struct {
	Scale      scaleDoc       `yaml:"scale"`
	Values     []float64      `yaml:"values"`
	Errors     []float64      `yaml:"errors,omitempty"`
	Group      int32          `yaml:"group,omitempty"`
	Selected   bool           `yaml:"selected,omitempty"`
	Visible    *bool          `yaml:"visible,omitempty"`
	Attributes []attributeDoc `yaml:"attributes,omitempty"`
}

func (d *seriesDoc) attributes() (*attr.List, error) {
	list := attr.NewList()
	names := collision.NewTracker(len(d.Attributes))
	for i := range d.Attributes {
		if err := names.Track(d.Attributes[i].Name); err != nil {
			return nil, err
		}

		a, err := d.Attributes[i].build()
		if err != nil {
			return nil, err
		}
		list.Set(a)
	}

	return list, nil
}

func (d *seriesDoc) options() ([]series.Option, error) {
	list, err := d.attributes()
	if err != nil {
		return nil, err
	}

	opts := []series.Option{
		series.WithAttributes(list),
		series.WithGroup(d.Group),
		series.WithSelected(d.Selected),
	}
	if d.Visible != nil {
		opts = append(opts, series.WithVisible(*d.Visible))
	}
	if d.Errors != nil {
		opts = append(opts, series.WithErrors(d.Errors))
	}

	return opts, nil
}

func (d *seriesDoc) build() (*series.Sampled, error) {
	sc, err := d.Scale.build()
	if err != nil {
		return nil, err
	}

	opts, err := d.options()
	if err != nil {
		return nil, err
	}

	return series.NewSampled(sc, d.Values, opts...)
}

func newSeriesDoc(s series.Series) (*seriesDoc, error) {
	visible := s.Visible()
	doc := &seriesDoc{
		Scale:    scaleDoc{Points: s.Scale().Points()},
		Values:   s.Values(),
		Errors:   s.Errors(),
		Group:    s.Group(),
		Selected: s.Selected(),
		Visible:  &visible,
	}

	for a := range s.Attributes().All() {
		ad, err := newAttributeDoc(a)
		if err != nil {
			return nil, err
		}
		doc.Attributes = append(doc.Attributes, ad)
	}

	return doc, nil
}

// eventsDoc is the input of the bin command: bin edges plus events.
type eventsDoc struct {
	Scale      scaleDoc          `yaml:"scale"`
	Group      int32             `yaml:"group,omitempty"`
	Attributes []attributeDoc    `yaml:"attributes,omitempty"`
	Events     []histogram.Event `yaml:"events"`
}

func readYAML(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
