package common

import "math/big"

// EthToWei converts ETH as a float to Wei as a big int.
func EthToWei(n float64) *big.Int {
	f := new(big.Float).SetFloat64(n)
	power := new(big.Float).SetInt(new(big.Int).Exp(
		big.NewInt(10), big.NewInt(18), nil,
	))
	f.Mul(f, power)
	res, _ := f.Int(nil)
	return res
}
