//go:build !release

package app

const strictInvariants = true
