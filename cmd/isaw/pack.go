package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	isaw "github.com/ornl-ndav/ISAW-sub008"
	"github.com/ornl-ndav/ISAW-sub008/format"
	"github.com/ornl-ndav/ISAW-sub008/persist"
	"github.com/ornl-ndav/ISAW-sub008/section"
)

type packOptions struct {
	in, out       string
	compression   string
	valueEncoding string
	scaleEncoding string
	sizeLimit     int
	bigEndian     bool
}

func (o *packOptions) persistOptions() ([]persist.Option, error) {
	c, err := format.ParseCompressionType(o.compression)
	if err != nil {
		return nil, err
	}
	ve, err := format.ParseEncodingType(o.valueEncoding)
	if err != nil {
		return nil, err
	}
	se, err := format.ParseEncodingType(o.scaleEncoding)
	if err != nil {
		return nil, err
	}

	opts := []persist.Option{
		persist.WithCompression(c),
		persist.WithValueEncoding(ve),
		persist.WithScaleEncoding(se),
	}
	if o.bigEndian {
		opts = append(opts, persist.WithBigEndian())
	}

	return opts, nil
}

func newPackCmd(root *rootOptions) *cobra.Command {
	opts := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Compress a spectrum YAML document into its persisted form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc seriesDoc
			if err := readYAML(opts.in, &doc); err != nil {
				return err
			}

			s, err := doc.build()
			if err != nil {
				return fmt.Errorf("%s: %w", opts.in, err)
			}

			popts, err := opts.persistOptions()
			if err != nil {
				return err
			}

			var data []byte
			if opts.sizeLimit > 0 {
				data, err = persist.Compress(s, opts.sizeLimit, popts...)
			} else {
				data, err = isaw.Pack(s, popts...)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(opts.out, data, 0o644); err != nil {
				return err
			}
			root.log().Info("packed series", "points", s.Len(), "bytes", len(data), "out", opts.out)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", "spectrum YAML document")
	f.StringVar(&opts.out, "out", "", "output file")
	f.StringVar(&opts.compression, "compression", "zstd", "payload compression (none, zstd, s2, lz4)")
	f.StringVar(&opts.valueEncoding, "value-encoding", "gorilla", "value and error column encoding (raw, gorilla)")
	f.StringVar(&opts.scaleEncoding, "scale-encoding", "gorilla", "scale column encoding (raw, gorilla)")
	f.IntVar(&opts.sizeLimit, "size-limit", 0, "fail when the result exceeds this many bytes (0 disables)")
	f.BoolVar(&opts.bigEndian, "big-endian", false, "write numeric fields big-endian")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newUnpackCmd(root *rootOptions) *cobra.Command {
	var (
		in         string
		headerOnly bool
	)

	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Restore a persisted spectrum and print it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			if headerOnly {
				h, err := persist.Inspect(data)
				if err != nil {
					return err
				}

				return writeYAML(cmd.OutOrStdout(), newHeaderDoc(h))
			}

			s, err := isaw.Unpack(data)
			if err != nil {
				return err
			}
			root.log().Debug("unpacked series", "kind", s.Kind().String(), "points", s.Len())

			doc, err := newSeriesDoc(s)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "persisted spectrum file")
	cmd.Flags().BoolVar(&headerOnly, "header", false, "print only the decoded header")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

type headerDoc struct {
	Count         uint32 `yaml:"count"`
	Group         int32  `yaml:"group"`
	Attributes    uint16 `yaml:"attributes"`
	Modeled       bool   `yaml:"modeled"`
	Errors        bool   `yaml:"errors"`
	BigEndian     bool   `yaml:"big_endian"`
	ScaleEncoding string `yaml:"scale_encoding"`
	ValueEncoding string `yaml:"value_encoding"`
	Compression   string `yaml:"compression"`
	PayloadLength uint32 `yaml:"payload_length"`
	RawLength     uint32 `yaml:"raw_length"`
	Checksum      string `yaml:"checksum"`
}

func newHeaderDoc(h section.Header) headerDoc {
	return headerDoc{
		Count:         h.Count,
		Group:         h.Group,
		Attributes:    h.AttrCount,
		Modeled:       h.Flag.IsModeled(),
		Errors:        h.Flag.HasErrors(),
		BigEndian:     h.Flag.IsBigEndian(),
		ScaleEncoding: h.Flag.ScaleEncoding().String(),
		ValueEncoding: h.Flag.ValueEncoding().String(),
		Compression:   h.Flag.Compression().String(),
		PayloadLength: h.PayloadLength,
		RawLength:     h.RawLength,
		Checksum:      fmt.Sprintf("%016x", h.Checksum),
	}
}
