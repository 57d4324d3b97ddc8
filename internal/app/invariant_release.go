//go:build release

package app

const strictInvariants = false
