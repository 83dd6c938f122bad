//go:build !unix

package fsx

func isEXDEV(error) bool {
	return false
}
