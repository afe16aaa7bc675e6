package matrix

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/accelsim/scratchplan/core"
	"github.com/accelsim/scratchplan/schedule"
)

// Artifacts is the in-memory mirror of the three per-SPM occupancy matrices
// and the tensor size vector, ready to be written to disk via WriteTo.
type Artifacts struct {
	// N is the schedule length (number of rows).
	N int

	// T is the distinct tensor count (number of columns).
	T int

	// Sizes holds size[j] = min(storageBytes(tensor_j), spmCapacity), indexed
	// by the id assigned during Build.
	Sizes []int64

	// Tensors maps a column id back to the core.TensorID it was assigned
	// from, in the same first-appearance order as Sizes.
	Tensors []core.TensorID

	// M holds the three N x T occupancy matrices, M[0] for the first input
	// slot, M[1] for the second input slot, M[2] for the output slot.
	M [3][][]uint8
}

// Build assigns every distinct tensor referenced by sched an id 0..T-1 in
// order of first appearance across the concatenated inputs++outputs lists,
// then populates M0/M1/M2 and Sizes. spmCapacity clamps each tensor's
// recorded size.
func Build(sched *schedule.Schedule, g *core.Graph, spmCapacity int64) (*Artifacts, error) {
	order := sched.Order()
	n := len(order)

	ids := make(map[core.TensorID]int)
	var sizes []int64
	var tensorOrder []core.TensorID

	idFor := func(t core.TensorID) (int, error) {
		if id, ok := ids[t]; ok {
			return id, nil
		}
		tensor, err := g.Tensor(t)
		if err != nil {
			return 0, fmt.Errorf("matrix: %w", err)
		}
		id := len(sizes)
		ids[t] = id
		size := tensor.StorageBytes()
		if size > spmCapacity {
			size = spmCapacity
		}
		sizes = append(sizes, size)
		tensorOrder = append(tensorOrder, t)
		return id, nil
	}

	type slotRow struct {
		m0, m1, m2 int
		hasM1      bool
	}
	rows := make([]slotRow, n)

	for step, opID := range order {
		op, err := g.Operator(opID)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}

		var row slotRow
		if len(op.Inputs) >= 1 {
			id, err := idFor(op.Inputs[0])
			if err != nil {
				return nil, err
			}
			row.m0 = id
		}
		if len(op.Inputs) == 2 {
			id, err := idFor(op.Inputs[1])
			if err != nil {
				return nil, err
			}
			row.m1 = id
			row.hasM1 = true
		}
		if len(op.Outputs) >= 1 {
			id, err := idFor(op.Outputs[0])
			if err != nil {
				return nil, err
			}
			row.m2 = id
		}
		rows[step] = row
	}

	t := len(sizes)
	art := &Artifacts{N: n, T: t, Sizes: sizes, Tensors: tensorOrder}
	for s := range art.M {
		art.M[s] = make([][]uint8, n)
		for i := range art.M[s] {
			art.M[s][i] = make([]uint8, t)
		}
	}

	for step, row := range rows {
		art.M[0][step][row.m0] = 1
		if row.hasM1 {
			art.M[1][step][row.m1] = 1
		}
		art.M[2][step][row.m2] = 1
	}

	return art, nil
}

// WriteTo writes sizeFile.txt, matrixFile0.txt, matrixFile1.txt, and
// matrixFile2.txt into dir, which must already exist and be writable. The
// format is frozen: a single whitespace-separated line of sizes, and N
// whitespace-separated 0/1 lines of T values per matrix.
func (a *Artifacts) WriteTo(dir string) error {
	if err := writeSizeFile(filepath.Join(dir, "sizeFile.txt"), a.Sizes); err != nil {
		return err
	}
	for s := 0; s < 3; s++ {
		name := fmt.Sprintf("matrixFile%d.txt", s)
		if err := writeMatrixFile(filepath.Join(dir, name), a.M[s]); err != nil {
			return err
		}
	}
	return nil
}

func writeSizeFile(path string, sizes []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, s := range sizes {
		if i > 0 {
			if _, err := w.WriteString(" "); err != nil {
				return fmt.Errorf("%w: %v", ErrArtifactIO, err)
			}
		}
		if _, err := w.WriteString(strconv.FormatInt(s, 10)); err != nil {
			return fmt.Errorf("%w: %v", ErrArtifactIO, err)
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	return nil
}

func writeMatrixFile(path string, rows [][]uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				if _, err := w.WriteString(" "); err != nil {
					return fmt.Errorf("%w: %v", ErrArtifactIO, err)
				}
			}
			if _, err := w.WriteString(strconv.Itoa(int(v))); err != nil {
				return fmt.Errorf("%w: %v", ErrArtifactIO, err)
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrArtifactIO, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	return nil
}
