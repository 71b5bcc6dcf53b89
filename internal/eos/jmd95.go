package eos

import "math"

// Jackett and McDougall (1995) coefficients, JAOT 12(4) pp. 381-388.
// Inputs: practical salinity, potential temperature [deg C], pressure
// [dbar]. The bulk modulus polynomial expects pressure in bar.

// fresh water density at atmospheric pressure
var jmdFw = [6]float64{
	999.842594,
	6.793952e-02,
	-9.095290e-03,
	1.001685e-04,
	-1.120083e-06,
	6.536332e-09,
}

// salinity contribution at atmospheric pressure
var jmdSw = [9]float64{
	8.244930e-01,
	-4.089900e-03,
	7.643800e-05,
	-8.246700e-07,
	5.387500e-09,
	-5.724660e-03,
	1.022700e-04,
	-1.654600e-06,
	4.831400e-04,
}

// secant bulk modulus: fresh water terms
var jmdKFw = [5]float64{
	1.965933e+04,
	1.444304e+02,
	-1.706103e+00,
	9.648704e-03,
	-4.190253e-05,
}

// secant bulk modulus: salinity terms
var jmdKSw = [7]float64{
	5.284855e+01,
	-3.101089e-01,
	6.283263e-03,
	-5.084188e-05,
	3.886640e-01,
	9.085835e-03,
	-4.619924e-04,
}

// secant bulk modulus: pressure terms
var jmdKP = [14]float64{
	3.186519e+00,
	2.212276e-02,
	-2.984642e-04,
	1.956415e-06,
	6.704388e-03,
	-1.847318e-04,
	2.059331e-07,
	1.480266e-04,
	2.102898e-04,
	-1.202016e-05,
	1.394680e-07,
	-2.040237e-06,
	6.128773e-08,
	6.207323e-10,
}

// JMD95 computes in-situ density [kg m-3] from practical salinity,
// potential temperature [deg C], and pressure [dbar].
func JMD95(s, t, p float64) float64 {
	s1o2 := math.Sqrt(s)
	pb := p * 0.1 // dbar to bar

	// density at atmospheric pressure
	rho := jmdFw[0] + t*(jmdFw[1]+t*(jmdFw[2]+t*(jmdFw[3]+t*(jmdFw[4]+t*jmdFw[5])))) +
		s*(jmdSw[0]+t*(jmdSw[1]+t*(jmdSw[2]+t*(jmdSw[3]+t*jmdSw[4])))+
			s1o2*(jmdSw[5]+t*(jmdSw[6]+t*jmdSw[7]))+
			s*jmdSw[8])

	// secant bulk modulus
	k := jmdKFw[0] + t*(jmdKFw[1]+t*(jmdKFw[2]+t*(jmdKFw[3]+t*jmdKFw[4]))) +
		s*(jmdKSw[0]+t*(jmdKSw[1]+t*(jmdKSw[2]+t*jmdKSw[3]))+
			s1o2*(jmdKSw[4]+t*(jmdKSw[5]+t*jmdKSw[6]))) +
		pb*(jmdKP[0]+t*(jmdKP[1]+t*(jmdKP[2]+t*jmdKP[3]))+
			s*(jmdKP[4]+t*(jmdKP[5]+t*jmdKP[6])+s1o2*jmdKP[7])) +
		pb*pb*(jmdKP[8]+t*(jmdKP[9]+t*jmdKP[10])+
			s*(jmdKP[11]+t*(jmdKP[12]+t*jmdKP[13])))

	return rho / (1.0 - pb/k)
}
