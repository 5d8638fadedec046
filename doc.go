// Package sparsemat is a small toolkit for integer sparse matrices.
//
// It is organized under three packages and one command:
//
//	sparse/         - the Matrix type, Add/Sub/Mul kernels, validators, gonum interop
//	codec/          - the "rows=/cols=/(r, c, v)" text format (Decode, Encode)
//	spy/            - sparsity-pattern plots rendered with gonum plot
//	cmd/sparsemat/  - loads two matrices and prints their sum, difference and product
//
// Quick example:
//
//	a, _ := codec.DecodeFile("matrix1.txt")
//	b, _ := codec.DecodeFile("matrix2.txt")
//	p, err := sparse.Mul(a, b) // errors.Is(err, sparse.ErrDimensionMismatch) when a.Cols != b.Rows
//
// Results never contain zero-valued entries; absent cells read as 0.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
