package distfield

// Flat is the serializable form of a Field: the dense cell slice in
// row-major order plus its declared shape. It is JSON-compatible so an
// external caller can cache a precomputed field between sessions and restore
// it with bit-identical values.
type Flat struct {
	Data []int `json:"data"`
	Rows int   `json:"rows"`
	Cols int   `json:"cols"`
}

// Flatten converts the field to its flat representable form.
// The returned Data is a copy; mutating it does not touch the field.
// Complexity: O(rows×cols).
func (f *Field) Flatten() Flat {
	data := make([]int, len(f.cells))
	copy(data, f.cells)
	return Flat{Data: data, Rows: f.rows, Cols: f.cols}
}

// Unflatten reconstructs a Field from its flat form.
// Returns ErrBadShape for non-positive dimensions and ErrShapeMismatch when
// the data length disagrees with the declared shape — the signature of a
// corrupt or mismatched cache.
// Complexity: O(rows×cols).
func Unflatten(flat Flat) (*Field, error) {
	if flat.Rows <= 0 || flat.Cols <= 0 {
		return nil, ErrBadShape
	}
	if len(flat.Data) != flat.Rows*flat.Cols {
		return nil, ErrShapeMismatch
	}
	cells := make([]int, len(flat.Data))
	copy(cells, flat.Data)
	return &Field{rows: flat.Rows, cols: flat.Cols, cells: cells}, nil
}
