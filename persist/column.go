package persist

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/encoding"
	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/format"
)

func newColumnEncoder(enc format.EncodingType, engine endian.EndianEngine) encoding.ColumnarEncoder[float64] {
	if enc == format.TypeGorilla {
		return encoding.NewFloatGorillaEncoder()
	}

	return encoding.NewFloatRawEncoder(engine)
}

func newColumnDecoder(enc format.EncodingType, engine endian.EndianEngine) encoding.ColumnarDecoder[float64] {
	if enc == format.TypeGorilla {
		return encoding.NewFloatGorillaDecoder()
	}

	return encoding.NewFloatRawDecoder(engine)
}

// writeColumn appends values as one length-prefixed block.
func writeColumn(w *encoding.VarStringEncoder, enc format.EncodingType, engine endian.EndianEngine, values []float64) {
	col := newColumnEncoder(enc, engine)
	defer col.Finish()

	col.WriteSlice(values)
	w.WriteBytes(col.Bytes())
}

// readColumn reads one block holding exactly count values.
func readColumn(r *encoding.VarStringDecoder, enc format.EncodingType, engine endian.EndianEngine, count int, what string) ([]float64, error) {
	block := r.ReadBytes()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s column: %w", errs.ErrCorruptPayload, what, err)
	}

	if enc == format.TypeRaw && len(block) != count*8 {
		return nil, fmt.Errorf("%w: %s column is %d bytes, want %d", errs.ErrCorruptPayload, what, len(block), count*8)
	}

	values, ok := encoding.DecodeAll(newColumnDecoder(enc, engine), block, count)
	if !ok {
		return nil, fmt.Errorf("%w: %s column holds %d of %d values", errs.ErrCorruptPayload, what, len(values), count)
	}

	return values, nil
}
