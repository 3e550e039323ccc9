// +build pgnumeric_base10

package pgnumeric

type digit = int16

const (
	numBase        = 10
	decDigits      = 1
	halfNBase      = 5
	mulGuardDigits = 4
	divGuardDigits = 8
)
