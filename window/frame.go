package window

// Frame is a point-in-time copy of a sliding window's contents, rows in
// chronological order (oldest first). A Frame is decoupled from the live
// buffer: concurrent appends after the snapshot cannot change it. Callers
// must treat it as read-only.
type Frame struct {
	Rows       int
	Cols       int
	Data       []float64 // row-major, Rows*Cols
	Timestamps []float64 // one per row
}

// Row returns the i-th sample row. The returned slice aliases the frame.
func (f *Frame) Row(i int) []float64 {
	return f.Data[i*f.Cols : (i+1)*f.Cols]
}

// Column copies the j-th feature column into a new slice.
func (f *Frame) Column(j int) []float64 {
	out := make([]float64, f.Rows)
	for i := range out {
		out[i] = f.Data[i*f.Cols+j]
	}
	return out
}

// At returns the value at row i, column j.
func (f *Frame) At(i, j int) float64 {
	return f.Data[i*f.Cols+j]
}
