package decimal

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer, storing d as its decimal text — the
// representation every SQL decimal/numeric column driver accepts without
// a lossy intermediate binary float.
func (d Decimal[C]) Value() (driver.Value, error) {
	if d.isNaN || d.isInf {
		return nil, fmt.Errorf("decimal: cannot store non-finite value %s in a SQL column", d)
	}
	return d.String(), nil
}

// Scan implements sql.Scanner, accepting the column forms a driver
// typically hands back for a text/numeric column: string, []byte, or an
// integer value. It parses under d's existing policy, or Abort if d is
// the zero value.
func (d *Decimal[C]) Scan(src any) error {
	policy := d.Policy()
	switch v := src.(type) {
	case nil:
		return fmt.Errorf("decimal: cannot scan NULL into %T", d)
	case string:
		*d = Parse[C](v, policy)
	case []byte:
		*d = Parse[C](string(v), policy)
	case int64:
		*d = FromInt64[C](v, policy)
	case float64:
		*d = FromFloat64[C](v, policy)
	default:
		return fmt.Errorf("decimal: cannot scan %T into %T", src, d)
	}
	if d.IsNaN() && d.Flags.InvalidOperation {
		return fmt.Errorf("%w: %v", ErrInvalidDecimal, src)
	}
	return nil
}
