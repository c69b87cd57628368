// Package table holds tabulated stopping-power data: energy samples and the
// matching net stopping power (electronic + nuclear).
//
// Tables usually come from SRIM output files. [Read] parses the text format,
// [Loader] resolves "<ion>_in_<material>" files through a [stg.FileStorage],
// and [New] / [FromComponents] build a table from slices already in memory.
// Every constructor validates its input; a malformed table is reported as a
// [*MalformedTableError] that matches [ErrMalformedTable] with errors.Is.
//
// # Usage
//
//	t, err := table.New([]float64{0.01, 0.1, 1, 10}, []float64{60, 80, 25, 4})
//	if err != nil {
//		return err
//	}
package table
