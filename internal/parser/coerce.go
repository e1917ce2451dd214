package parser

import (
	"github.com/paveg/siunit/internal/errors"
	"github.com/paveg/siunit/internal/temperature"
)

const opCoerce = "Coerce"

// Coerce resolves an Input into a canonical Celsius buffer.
//
// A Buffer input is returned as-is, so callers that must not share it need to
// copy. Every other variant yields a fresh slice. On error no partial buffer is
// returned.
func Coerce(in Input) ([]float64, error) {
	switch in.kind {
	case KindNumber, KindString, KindTemperature:
		v, err := coerceScalar(in)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	case KindSequence:
		out := make([]float64, len(in.items))
		for i, item := range in.items {
			if !item.IsScalar() {
				return nil, errors.NewInvalidShapeError(opCoerce,
					"sequence elements must be scalars, got nested "+item.kind.String())
			}
			v, err := coerceScalar(item)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindBuffer:
		if in.buffer == nil {
			return []float64{}, nil
		}
		return in.buffer, nil
	case KindMatrix:
		return nil, errors.NewInvalidShapeError(opCoerce, "values must be a 1-D buffer, got 2-D")
	default:
		return nil, errors.NewInvalidShapeError(opCoerce, "unknown input kind "+in.kind.String())
	}
}

func coerceScalar(in Input) (float64, error) {
	switch in.kind {
	case KindNumber:
		return in.number, nil
	case KindTemperature:
		return in.temp.Celsius(), nil
	case KindString:
		v, err := temperature.Parse(in.text)
		if err != nil {
			return 0, err
		}
		return v.Celsius(), nil
	default:
		return 0, errors.NewInvalidShapeError(opCoerce, "expected a scalar, got "+in.kind.String())
	}
}

// Values coerces and returns a slice the caller owns.
func Values(in Input) ([]float64, error) {
	out, err := Coerce(in)
	if err != nil {
		return nil, err
	}
	if in.kind == KindBuffer {
		owned := make([]float64, len(out))
		copy(owned, out)
		return owned, nil
	}
	return out, nil
}
